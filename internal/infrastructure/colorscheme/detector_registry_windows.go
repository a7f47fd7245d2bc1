//go:build windows

package colorscheme

import (
	"golang.org/x/sys/windows/registry"
)

const personalizeKey = `Software\Microsoft\Windows\CurrentVersion\Themes\Personalize`

// RegistryDetector reads AppsUseLightTheme from the current user's registry hive.
type RegistryDetector struct{}

// NewRegistryDetector creates a Windows registry detector.
func NewRegistryDetector() *RegistryDetector {
	return &RegistryDetector{}
}

// Name implements port.ColorSchemeDetector.
func (*RegistryDetector) Name() string {
	return detectorNameRegistry
}

// Priority implements port.ColorSchemeDetector.
func (*RegistryDetector) Priority() int {
	return priorityRegistry
}

// Available implements port.ColorSchemeDetector.
func (*RegistryDetector) Available() bool {
	k, err := registry.OpenKey(registry.CURRENT_USER, personalizeKey, registry.QUERY_VALUE)
	if err != nil {
		return false
	}
	_ = k.Close()
	return true
}

// Detect implements port.ColorSchemeDetector.
func (*RegistryDetector) Detect() (prefersDark, ok bool) {
	k, err := registry.OpenKey(registry.CURRENT_USER, personalizeKey, registry.QUERY_VALUE)
	if err != nil {
		return false, false
	}
	defer k.Close()

	v, _, err := k.GetIntegerValue("AppsUseLightTheme")
	if err != nil {
		return false, false
	}
	// 0 = dark, 1 = light
	return v == 0, true
}
