package model

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vybe/themesync/internal/cli/styles"
	"github.com/vybe/themesync/internal/domain/entity"
	"github.com/vybe/themesync/internal/infrastructure/config"
	"github.com/vybe/themesync/internal/ui/theme"
)

// ThemeController is the part of the theme manager a toggle consumes.
type ThemeController interface {
	Theme() entity.ThemeMode
	SetTheme(ctx context.Context, mode entity.ThemeMode) error
	ToggleTheme(ctx context.Context) (entity.ThemeMode, error)
	Subscribe(fn func(theme.State)) func()
}

var _ ThemeController = (*theme.Manager)(nil)

// stateChangedMsg carries a manager notification into the update loop.
type stateChangedMsg struct {
	state theme.State
}

// themeAppliedMsg is sent when a set or toggle returns.
type themeAppliedMsg struct {
	err error
}

// ToggleModel is a dark/light switch. It redraws only when the manager
// notifies a change, so writes from other processes show up too.
type ToggleModel struct {
	ctx     context.Context
	ctrl    ThemeController
	cfg     *config.Config
	theme   *styles.Theme
	keys    styles.ToggleKeyMap
	help    help.Model
	updates chan theme.State
	unsub   func()

	mode     entity.ThemeMode
	source   entity.ThemeSource
	err      error
	quitting bool
}

// NewToggleModel creates a toggle bound to ctrl. The subscription lives
// until the model quits or Close is called.
func NewToggleModel(ctx context.Context, ctrl ThemeController, cfg *config.Config) *ToggleModel {
	mode := ctrl.Theme()
	th := styles.NewTheme(cfg, mode)

	m := &ToggleModel{
		ctx:     ctx,
		ctrl:    ctrl,
		cfg:     cfg,
		theme:   th,
		keys:    styles.DefaultToggleKeyMap(),
		help:    styles.NewHelp(th),
		updates: make(chan theme.State, 1),
		mode:    mode,
	}
	m.unsub = ctrl.Subscribe(m.deliver)
	return m
}

// deliver keeps only the latest state so the manager never blocks on a
// slow renderer.
func (m *ToggleModel) deliver(state theme.State) {
	for {
		select {
		case m.updates <- state:
			return
		default:
		}
		select {
		case <-m.updates:
		default:
		}
	}
}

func (m *ToggleModel) waitForState() tea.Cmd {
	updates := m.updates
	return func() tea.Msg {
		return stateChangedMsg{state: <-updates}
	}
}

// Close drops the manager subscription.
func (m *ToggleModel) Close() {
	if m.unsub != nil {
		m.unsub()
	}
}

// Mode returns the theme the model last rendered.
func (m *ToggleModel) Mode() entity.ThemeMode {
	return m.mode
}

// Init implements tea.Model.
func (m *ToggleModel) Init() tea.Cmd {
	return m.waitForState()
}

// Update implements tea.Model.
func (m *ToggleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateChangedMsg:
		m.mode = msg.state.Theme
		m.source = msg.state.Source
		m.theme = styles.NewTheme(m.cfg, m.mode)
		m.help = styles.NewHelp(m.theme)
		return m, m.waitForState()

	case themeAppliedMsg:
		m.err = msg.err
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			m.Close()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Toggle):
			return m, m.toggle()
		case key.Matches(msg, m.keys.Dark):
			return m, m.set(entity.ThemeDark)
		case key.Matches(msg, m.keys.Light):
			return m, m.set(entity.ThemeLight)
		}
	}

	return m, nil
}

func (m *ToggleModel) toggle() tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		_, err := ctrl.ToggleTheme(ctx)
		return themeAppliedMsg{err: err}
	}
}

func (m *ToggleModel) set(mode entity.ThemeMode) tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		return themeAppliedMsg{err: ctrl.SetTheme(ctx, mode)}
	}
}

// View implements tea.Model.
func (m *ToggleModel) View() string {
	if m.quitting {
		return ""
	}
	t := m.theme

	segment := func(mode entity.ThemeMode) string {
		label := styles.ModeIcon(mode) + " " + mode.String()
		if mode == m.mode {
			return t.SwitchOn.Render(label)
		}
		return t.SwitchOff.Render(label)
	}

	rows := []string{
		t.BoxHeader.Render("Theme"),
		lipgloss.JoinHorizontal(lipgloss.Top, segment(entity.ThemeDark), segment(entity.ThemeLight)),
	}
	if m.source != "" {
		rows = append(rows, "", t.Subtle.Render("source: ")+t.SourceBadge(m.source))
	}
	if m.err != nil {
		rows = append(rows, "", t.ErrorStyle.Render("Error: "+m.err.Error()))
	}
	rows = append(rows, "", m.help.View(m.keys))

	return t.Box.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// Ensure interface compliance.
var _ tea.Model = (*ToggleModel)(nil)
