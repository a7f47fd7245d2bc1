package colorscheme

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

const (
	detectorNameTerminal = "terminal"
	priorityTerminal     = 10
)

// TerminalDetector infers the preference from the terminal background color.
// It is the last resort on hosts without desktop settings (ssh sessions, ttys).
type TerminalDetector struct {
	isTerminal func() bool
	hasDark    func() bool
}

// NewTerminalDetector creates a detector querying the controlling terminal.
func NewTerminalDetector() *TerminalDetector {
	return &TerminalDetector{
		isTerminal: func() bool { return isatty.IsTerminal(os.Stdout.Fd()) },
		hasDark:    lipgloss.HasDarkBackground,
	}
}

// Name implements port.ColorSchemeDetector.
func (*TerminalDetector) Name() string {
	return detectorNameTerminal
}

// Priority implements port.ColorSchemeDetector.
func (*TerminalDetector) Priority() int {
	return priorityTerminal
}

// Available implements port.ColorSchemeDetector.
func (d *TerminalDetector) Available() bool {
	return d.isTerminal()
}

// Detect implements port.ColorSchemeDetector.
func (d *TerminalDetector) Detect() (prefersDark, ok bool) {
	if !d.isTerminal() {
		return false, false
	}
	return d.hasDark(), true
}
