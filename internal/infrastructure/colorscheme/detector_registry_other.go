//go:build !windows

package colorscheme

// RegistryDetector is unavailable outside Windows.
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
	return false
}

// Detect implements port.ColorSchemeDetector.
func (*RegistryDetector) Detect() (prefersDark, ok bool) {
	return false, false
}
