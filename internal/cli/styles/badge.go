package styles

import (
	"github.com/vybe/themesync/internal/domain/entity"
)

// ModeIcon returns the icon for a theme mode.
func ModeIcon(mode entity.ThemeMode) string {
	if mode == entity.ThemeLight {
		return IconSun
	}
	return IconMoon
}

// ModeBadge renders the active theme with its icon.
func (t *Theme) ModeBadge(mode entity.ThemeMode) string {
	return t.Badge.Render(ModeIcon(mode) + " " + mode.String())
}

// SourceBadge renders where the active theme came from.
func (t *Theme) SourceBadge(source entity.ThemeSource) string {
	return t.BadgeMuted.Render(string(source))
}

// SystemBadge renders the operating system preference, or "unknown".
func (t *Theme) SystemBadge(mode entity.ThemeMode, known bool) string {
	if !known {
		return t.BadgeMuted.Render(IconDesktop + " unknown")
	}
	return t.BadgeMuted.Render(IconDesktop + " " + mode.String())
}
