// Package colorscheme samples the operating system color scheme preference.
package colorscheme

import (
	"github.com/vybe/themesync/internal/application/port"
)

const (
	detectorNameRegistry = "windows-registry"
	priorityRegistry     = 50
)

// DefaultDetectors returns every detector this host may support, headed by
// the config override.
func DefaultDetectors(cfg ConfigProvider) []port.ColorSchemeDetector {
	return []port.ColorSchemeDetector{
		NewConfigDetector(cfg),
		NewGsettingsDetector(),
		NewMacOSDetector(),
		NewRegistryDetector(),
		NewEnvDetector(),
		NewTerminalDetector(),
	}
}

var (
	_ port.ColorSchemeDetector = (*ConfigDetector)(nil)
	_ port.ColorSchemeDetector = (*EnvDetector)(nil)
	_ port.ColorSchemeDetector = (*GsettingsDetector)(nil)
	_ port.ColorSchemeDetector = (*MacOSDetector)(nil)
	_ port.ColorSchemeDetector = (*RegistryDetector)(nil)
	_ port.ColorSchemeDetector = (*TerminalDetector)(nil)
)
