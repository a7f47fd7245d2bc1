package port

import "github.com/vybe/themesync/internal/domain/entity"

// ColorSchemePreference represents the resolved operating system preference.
type ColorSchemePreference struct {
	// PrefersDark indicates whether dark mode is preferred.
	// Meaningless when Known is false.
	PrefersDark bool

	// Known is false when no detector could report a preference.
	Known bool

	// Source identifies which detector provided this preference.
	Source string
}

// ThemeMode converts the preference to a ThemeMode.
// The boolean is false when the preference is unknown.
func (p ColorSchemePreference) ThemeMode() (entity.ThemeMode, bool) {
	if !p.Known {
		return "", false
	}
	return entity.ThemeModeFromDark(p.PrefersDark), true
}

// ColorSchemeDetector detects the system's color scheme preference.
// Multiple detectors can be registered with different priorities.
type ColorSchemeDetector interface {
	// Name returns a human-readable name for this detector.
	Name() string

	// Priority returns the detector's priority.
	// Higher values are checked first.
	//   - 100+: explicit overrides (config)
	//   -  50+: desktop settings (gsettings, macOS defaults, Windows registry)
	//   -  10+: heuristics (GTK_THEME, terminal background)
	Priority() int

	// Available returns true if this detector can be used on this host.
	Available() bool

	// Detect returns the detected preference and whether detection succeeded.
	Detect() (prefersDark bool, ok bool)
}

// ColorSchemeResolver is the system preference signal.
// It manages multiple detectors and notifies listeners when the preference changes.
type ColorSchemeResolver interface {
	// Resolve returns the last sampled preference without re-querying detectors.
	Resolve() ColorSchemePreference

	// RegisterDetector adds a detector to the resolver.
	RegisterDetector(detector ColorSchemeDetector)

	// Refresh re-samples the detectors and returns the new preference.
	// Listeners are notified when the result differs from the previous sample.
	Refresh() ColorSchemePreference

	// OnChange registers a callback for preference changes.
	// Returns a function to unregister the callback.
	OnChange(callback func(ColorSchemePreference)) func()
}
