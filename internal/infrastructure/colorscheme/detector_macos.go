package colorscheme

import (
	"runtime"
	"strings"
)

const (
	detectorNameMacOS = "macos-defaults"
	priorityMacOS     = 50
)

// MacOSDetector reads AppleInterfaceStyle via the defaults command.
// The key is absent in light mode, so a failing command means light.
type MacOSDetector struct {
	goos string
	run  commandRunner
}

// NewMacOSDetector creates a new macOS defaults detector.
func NewMacOSDetector() *MacOSDetector {
	return &MacOSDetector{goos: runtime.GOOS, run: execOutput}
}

// Name implements port.ColorSchemeDetector.
func (*MacOSDetector) Name() string {
	return detectorNameMacOS
}

// Priority implements port.ColorSchemeDetector.
func (*MacOSDetector) Priority() int {
	return priorityMacOS
}

// Available implements port.ColorSchemeDetector.
func (d *MacOSDetector) Available() bool {
	return d.goos == "darwin"
}

// Detect implements port.ColorSchemeDetector.
func (d *MacOSDetector) Detect() (prefersDark, ok bool) {
	if !d.Available() {
		return false, false
	}
	output, err := d.run("defaults", "read", "-g", "AppleInterfaceStyle")
	if err != nil {
		return false, true
	}
	return strings.EqualFold(strings.TrimSpace(string(output)), "dark"), true
}
