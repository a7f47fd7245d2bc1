// Package styles provides reusable lipgloss-based TUI components.
package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconMoon    = "" // dark
	IconSun     = "" // light
	IconDesktop = "" // system preference
	IconCheck   = ""
	IconX       = ""
	IconWarning = ""
	IconInfo    = ""

	IconConfig   = ""
	IconDatabase = ""
	IconFolder   = ""
	IconEye      = "" // watch

	IconCursor = "" // chevron-right
)
