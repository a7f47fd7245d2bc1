package colorscheme

import (
	"github.com/vybe/themesync/internal/domain/entity"
)

const (
	detectorNameConfig = "config"
	priorityConfig     = 100
)

// ConfigProvider provides access to the system.color_scheme override.
type ConfigProvider interface {
	// GetColorScheme returns "default", "prefer-dark" or "prefer-light".
	GetColorScheme() string
}

// ConfigProviderFunc adapts a function to ConfigProvider.
type ConfigProviderFunc func() string

// GetColorScheme implements ConfigProvider.
func (f ConfigProviderFunc) GetColorScheme() string {
	return f()
}

// ConfigDetector reports the preference forced by configuration. It lets a
// user (or a test) simulate the operating system preference; "default" makes
// it unavailable so real detectors are consulted.
type ConfigDetector struct {
	cfg ConfigProvider
}

// NewConfigDetector creates a detector backed by the given provider.
func NewConfigDetector(cfg ConfigProvider) *ConfigDetector {
	return &ConfigDetector{cfg: cfg}
}

// Name implements port.ColorSchemeDetector.
func (*ConfigDetector) Name() string {
	return detectorNameConfig
}

// Priority implements port.ColorSchemeDetector.
func (*ConfigDetector) Priority() int {
	return priorityConfig
}

// Available implements port.ColorSchemeDetector.
func (d *ConfigDetector) Available() bool {
	if d.cfg == nil {
		return false
	}
	_, forced := entity.ParseColorScheme(d.cfg.GetColorScheme()).ThemeMode()
	return forced
}

// Detect implements port.ColorSchemeDetector.
func (d *ConfigDetector) Detect() (prefersDark, ok bool) {
	if d.cfg == nil {
		return false, false
	}
	mode, forced := entity.ParseColorScheme(d.cfg.GetColorScheme()).ThemeMode()
	if !forced {
		return false, false
	}
	return mode == entity.ThemeDark, true
}
