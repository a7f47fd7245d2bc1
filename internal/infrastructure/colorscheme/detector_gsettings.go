package colorscheme

import (
	"os/exec"
	"strings"
)

const (
	detectorNameGsettings = "gsettings"
	priorityGsettings     = 50
)

// commandRunner runs an external command and returns its stdout.
type commandRunner func(name string, args ...string) ([]byte, error)

func execOutput(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

// GsettingsDetector detects color scheme from GNOME gsettings.
type GsettingsDetector struct {
	run      commandRunner
	lookPath func(string) (string, error)
}

// NewGsettingsDetector creates a new gsettings-based detector.
func NewGsettingsDetector() *GsettingsDetector {
	return &GsettingsDetector{run: execOutput, lookPath: exec.LookPath}
}

// Name implements port.ColorSchemeDetector.
func (*GsettingsDetector) Name() string {
	return detectorNameGsettings
}

// Priority implements port.ColorSchemeDetector.
func (*GsettingsDetector) Priority() int {
	return priorityGsettings
}

// Available implements port.ColorSchemeDetector.
// Returns true if gsettings command is available.
func (d *GsettingsDetector) Available() bool {
	_, err := d.lookPath("gsettings")
	return err == nil
}

// Detect implements port.ColorSchemeDetector.
// Queries org.gnome.desktop.interface color-scheme, then the gtk-theme name.
func (d *GsettingsDetector) Detect() (prefersDark, ok bool) {
	output, err := d.run("gsettings", "get", "org.gnome.desktop.interface", "color-scheme")
	if err == nil {
		// Output is like "'prefer-dark'\n"
		switch strings.Trim(strings.TrimSpace(string(output)), "'\"") {
		case "prefer-dark":
			return true, true
		case "prefer-light":
			return false, true
		}
	}

	// "default" says nothing on its own; older desktops encode it in the theme name.
	output, err = d.run("gsettings", "get", "org.gnome.desktop.interface", "gtk-theme")
	if err != nil {
		return false, false
	}
	name := strings.Trim(strings.TrimSpace(string(output)), "'\"")
	if name == "" {
		return false, false
	}
	return strings.Contains(strings.ToLower(name), "dark"), true
}
