package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vybe/themesync/internal/domain/entity"
	"github.com/vybe/themesync/internal/ui/theme"
)

// StatusRenderer renders command output with styled text.
type StatusRenderer struct {
	theme *Theme
}

// NewStatusRenderer creates a new status renderer with the given theme.
func NewStatusRenderer(theme *Theme) *StatusRenderer {
	return &StatusRenderer{theme: theme}
}

// StatusInfo describes where the preference lives.
type StatusInfo struct {
	StorageKey string
	Backend    string
	Location   string
	ConfigFile string
}

// RenderStatus renders the manager state and storage details.
func (r *StatusRenderer) RenderStatus(state theme.State, info StatusInfo) string {
	t := r.theme
	labelStyle := t.Subtle.Width(10)
	pathStyle := t.Subtle

	var sb strings.Builder
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "  %s %s %s\n", labelStyle.Render("Theme"), t.ModeBadge(state.Theme), t.SourceBadge(state.Source))
	fmt.Fprintf(&sb, "  %s %s\n", labelStyle.Render("System"), t.SystemBadge(state.SystemTheme, state.SystemKnown))
	fmt.Fprintf(&sb, "  %s %s\n", labelStyle.Render("Key"), t.Normal.Render(info.StorageKey))
	fmt.Fprintf(&sb, "  %s %s %s\n",
		labelStyle.Render("Storage"),
		t.Normal.Render(info.Backend),
		pathStyle.Render(info.Location),
	)
	if info.ConfigFile != "" {
		fmt.Fprintf(&sb, "  %s %s\n", labelStyle.Render("Config"), pathStyle.Render(info.ConfigFile))
	}
	return sb.String()
}

// RenderChanged renders the result of set or toggle.
func (r *StatusRenderer) RenderChanged(mode entity.ThemeMode) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("\n  %s Theme set to %s\n", iconStyle.Render(IconCheck), r.theme.ModeBadge(mode))
}

// RenderCleared renders the result of clear.
func (r *StatusRenderer) RenderCleared(key string, next theme.State) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("\n  %s Cleared %s, now %s %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Highlight.Render(key),
		r.theme.ModeBadge(next.Theme),
		r.theme.SourceBadge(next.Source),
	)
}

// RenderWatchEvent renders one line of the watch stream.
func (r *StatusRenderer) RenderWatchEvent(state theme.State) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf("%s %s %s %s",
		iconStyle.Render(IconEye),
		r.theme.ModeBadge(state.Theme),
		r.theme.SourceBadge(state.Source),
		r.theme.SystemBadge(state.SystemTheme, state.SystemKnown),
	)
}

// RenderConfigPath renders the config file location.
func (r *StatusRenderer) RenderConfigPath(path string, exists bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	status := ""
	if !exists {
		status = " " + r.theme.WarningStyle.Render("(not created yet)")
	}
	return fmt.Sprintf("\n  %s Config %s%s\n", iconStyle.Render(IconConfig), r.theme.Subtle.Render(path), status)
}

// RenderDir renders one named directory.
func (r *StatusRenderer) RenderDir(name, path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Muted)
	return fmt.Sprintf("  %s %s %s\n", iconStyle.Render(IconFolder), r.theme.Subtle.Width(7).Render(name), r.theme.Normal.Render(path))
}

// RenderError renders an error message.
func (r *StatusRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)
	return fmt.Sprintf("\n  %s %s\n", iconStyle.Render(IconX), r.theme.ErrorStyle.Render(err.Error()))
}
