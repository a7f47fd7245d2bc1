package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// ToggleKeyMap defines keybindings for the theme toggle.
type ToggleKeyMap struct {
	Toggle key.Binding
	Dark   key.Binding
	Light  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k ToggleKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Dark, k.Light, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k ToggleKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle},
		{k.Dark, k.Light},
		{k.Help, k.Quit},
	}
}

// DefaultToggleKeyMap returns the default toggle keybindings.
func DefaultToggleKeyMap() ToggleKeyMap {
	return ToggleKeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter", "t"),
			key.WithHelp("space/t", "toggle"),
		),
		Dark: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "dark"),
		),
		Light: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "light"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewHelp creates a help model styled with the theme.
func NewHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = theme.HelpKey
	h.Styles.ShortDesc = theme.HelpDesc
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = theme.HelpKey
	h.Styles.FullDesc = theme.HelpDesc
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
