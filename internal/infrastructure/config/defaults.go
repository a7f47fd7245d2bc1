package config

import "github.com/vybe/themesync/internal/domain/entity"

// Default configuration constants
const (
	defaultStoragePollIntervalMs = 1000
	defaultSystemPollIntervalMs  = 5000

	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 3
)

// DefaultConfig returns the default configuration values.
// Storage and log paths are filled in by the loader.
func DefaultConfig() *Config {
	return &Config{
		Theme: ThemeConfig{
			DefaultTheme: entity.DefaultTheme.String(),
			StorageKey:   entity.DefaultStorageKey,
			EnableSystem: true,
			FollowSystem: false,
		},
		Storage: StorageConfig{
			Backend:        StorageBackendSQLite,
			PollIntervalMs: defaultStoragePollIntervalMs,
		},
		System: SystemConfig{
			ColorScheme:    string(entity.ColorSchemeDefault),
			PollIntervalMs: defaultSystemPollIntervalMs,
		},
		Logging: LoggingConfig{
			Level:         "info",
			Format:        "console",
			EnableFileLog: false,
			MaxSizeMB:     defaultLogMaxSizeMB,
			MaxBackups:    defaultLogMaxBackups,
		},
		Palette: PaletteConfig{
			// Empty colors fall back to the built-in palettes.
			Light: ColorPalette{},
			Dark:  ColorPalette{},
		},
	}
}
