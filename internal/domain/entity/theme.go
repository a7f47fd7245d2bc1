package entity

import (
	"errors"
	"fmt"
	"strings"
)

// ThemeMode is the visual mode applied to the document root.
// Exactly two values are valid: ThemeDark and ThemeLight.
type ThemeMode string

const (
	ThemeDark  ThemeMode = "dark"
	ThemeLight ThemeMode = "light"

	// DefaultTheme is used when nothing else resolves.
	DefaultTheme = ThemeDark
	// DefaultStorageKey is the key the preference is persisted under.
	DefaultStorageKey = "vybe-theme"
)

// ErrInvalidTheme is returned when a string is not a recognized ThemeMode.
var ErrInvalidTheme = errors.New("invalid theme mode")

// ParseThemeMode converts a persisted or user-supplied string to a ThemeMode.
// Matching is exact: "Dark" or " dark" are rejected like any other unknown value.
func ParseThemeMode(s string) (ThemeMode, error) {
	switch ThemeMode(s) {
	case ThemeDark, ThemeLight:
		return ThemeMode(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTheme, s)
	}
}

// Valid reports whether m is one of the two recognized modes.
func (m ThemeMode) Valid() bool {
	return m == ThemeDark || m == ThemeLight
}

// Opposite returns the other mode. Invalid modes map to DefaultTheme.
func (m ThemeMode) Opposite() ThemeMode {
	switch m {
	case ThemeDark:
		return ThemeLight
	case ThemeLight:
		return ThemeDark
	default:
		return DefaultTheme
	}
}

func (m ThemeMode) String() string {
	return string(m)
}

// AllThemeModes lists the valid modes in a stable order.
func AllThemeModes() []ThemeMode {
	return []ThemeMode{ThemeDark, ThemeLight}
}

// ThemeSource identifies which resolution step produced the effective theme.
type ThemeSource string

const (
	ThemeSourceStored  ThemeSource = "stored"
	ThemeSourceSystem  ThemeSource = "system"
	ThemeSourceDefault ThemeSource = "default"
)

// ResolveEffectiveTheme applies the resolution order:
// a valid stored value, then the system preference when reconciliation is
// enabled and the preference is known, then the fallback.
func ResolveEffectiveTheme(
	stored string,
	system ThemeMode,
	systemKnown bool,
	enableSystem bool,
	fallback ThemeMode,
) (ThemeMode, ThemeSource) {
	if mode, err := ParseThemeMode(stored); err == nil {
		return mode, ThemeSourceStored
	}
	if enableSystem && systemKnown && system.Valid() {
		return system, ThemeSourceSystem
	}
	if !fallback.Valid() {
		fallback = DefaultTheme
	}
	return fallback, ThemeSourceDefault
}

// ColorScheme is the OS-level preference vocabulary used by desktop settings
// and by the system.color_scheme override.
type ColorScheme string

const (
	ColorSchemeDefault     ColorScheme = "default"
	ColorSchemePreferDark  ColorScheme = "prefer-dark"
	ColorSchemePreferLight ColorScheme = "prefer-light"
)

// ParseColorScheme normalizes the accepted spellings.
// Unknown and empty values map to ColorSchemeDefault.
func ParseColorScheme(s string) ColorScheme {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "prefer-dark", "dark":
		return ColorSchemePreferDark
	case "prefer-light", "light":
		return ColorSchemePreferLight
	default:
		return ColorSchemeDefault
	}
}

// ThemeMode returns the mode the scheme forces, or false for ColorSchemeDefault.
func (c ColorScheme) ThemeMode() (ThemeMode, bool) {
	switch c {
	case ColorSchemePreferDark:
		return ThemeDark, true
	case ColorSchemePreferLight:
		return ThemeLight, true
	default:
		return "", false
	}
}

// ThemeModeFromDark maps a prefers-dark flag to a ThemeMode.
func ThemeModeFromDark(prefersDark bool) ThemeMode {
	if prefersDark {
		return ThemeDark
	}
	return ThemeLight
}
