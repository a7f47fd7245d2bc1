package theme

import (
	"context"
	"fmt"

	"github.com/vybe/themesync/internal/application/port"
	"github.com/vybe/themesync/internal/domain/entity"
	"github.com/vybe/themesync/internal/logging"
)

// ColorSchemeProperty is the inline style property that carries the native
// color-scheme hint alongside the class marker.
const ColorSchemeProperty = "color-scheme"

// Bootstrap applies the persisted theme to root before any interactive state
// exists. It adds exactly one class and sets the color-scheme property once.
//
// A missing, invalid or unreadable preference resolves to fallback. Storage
// failures, including a panicking store, never escape this function.
// Bootstrap must complete before Manager.Mount runs.
func Bootstrap(
	ctx context.Context,
	store port.PreferenceStore,
	root port.DocumentRoot,
	key string,
	fallback entity.ThemeMode,
) entity.ThemeMode {
	log := logging.FromContext(ctx)

	if !fallback.Valid() {
		fallback = entity.DefaultTheme
	}
	if key == "" {
		key = entity.DefaultStorageKey
	}

	mode := fallback
	stored, err := readPreference(ctx, store, key)
	if err != nil {
		log.Debug().Err(err).Str("key", key).Msg("bootstrap storage read failed, using fallback")
	} else if parsed, parseErr := entity.ParseThemeMode(stored); parseErr == nil {
		mode = parsed
	}

	root.AddClass(mode.String())
	root.SetStyleProperty(ColorSchemeProperty, mode.String())
	return mode
}

// readPreference reads key from store and converts a panic into an error.
func readPreference(ctx context.Context, store port.PreferenceStore, key string) (value string, err error) {
	if store == nil {
		return "", nil
	}
	defer func() {
		if r := recover(); r != nil {
			value = ""
			err = fmt.Errorf("preference store panicked: %v", r)
		}
	}()
	return store.Get(ctx, key)
}

// writePreference stores value under key and converts a panic into an error.
func writePreference(ctx context.Context, store port.PreferenceStore, key, value string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("preference store panicked: %v", r)
		}
	}()
	return store.Set(ctx, key, value)
}

// ClearMarker removes both theme classes from root, leaving it clean for a
// later Bootstrap or browser snippet.
func ClearMarker(root port.DocumentRoot) {
	root.RemoveClass(entity.ThemeDark.String())
	root.RemoveClass(entity.ThemeLight.String())
}
