package config

import (
	"fmt"
	"strings"

	"github.com/vybe/themesync/internal/domain/entity"
	"github.com/vybe/themesync/internal/domain/validation"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateTheme(config)...)
	validationErrors = append(validationErrors, validateStorage(config)...)
	validationErrors = append(validationErrors, validateSystem(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validatePalette("palette.light", config.Palette.Light)...)
	validationErrors = append(validationErrors, validatePalette("palette.dark", config.Palette.Dark)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

// Validate checks cfg without normalizing it first.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	return validateConfig(cfg)
}

func validateTheme(config *Config) []string {
	var validationErrors []string
	if _, err := entity.ParseThemeMode(config.Theme.DefaultTheme); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"theme.default_theme must be one of: dark, light (got: %s)",
			config.Theme.DefaultTheme,
		))
	}
	if config.Theme.StorageKey == "" {
		validationErrors = append(validationErrors, "theme.storage_key must not be empty")
	} else if strings.ContainsAny(config.Theme.StorageKey, " \t\r\n/\\") {
		validationErrors = append(validationErrors, "theme.storage_key must not contain whitespace or path separators")
	}
	if config.Theme.FollowSystem && !config.Theme.EnableSystem {
		validationErrors = append(validationErrors, "theme.follow_system requires theme.enable_system")
	}
	return validationErrors
}

func validateStorage(config *Config) []string {
	var validationErrors []string
	switch config.Storage.Backend {
	case StorageBackendSQLite, StorageBackendFile, StorageBackendMemory:
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"storage.backend must be one of: sqlite, file, memory (got: %s)",
			config.Storage.Backend,
		))
	}
	if config.Storage.PollIntervalMs < 0 {
		validationErrors = append(validationErrors, "storage.poll_interval_ms must be non-negative")
	}
	return validationErrors
}

func validateSystem(config *Config) []string {
	var validationErrors []string
	switch entity.ColorScheme(config.System.ColorScheme) {
	case entity.ColorSchemeDefault, entity.ColorSchemePreferDark, entity.ColorSchemePreferLight:
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"system.color_scheme must be one of: default, prefer-dark, prefer-light (got: %s)",
			config.System.ColorScheme,
		))
	}
	if config.System.PollIntervalMs < 0 {
		validationErrors = append(validationErrors, "system.poll_interval_ms must be non-negative")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "disabled", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error, disabled (got: %s)",
			config.Logging.Level,
		))
	}
	switch config.Logging.Format {
	case "console", "json", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: console, json (got: %s)",
			config.Logging.Format,
		))
	}
	if config.Logging.EnableFileLog && config.Logging.MaxSizeMB < 1 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be at least 1")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	return validationErrors
}

func validatePalette(prefix string, p ColorPalette) []string {
	return validation.ValidatePaletteHex(prefix,
		validation.NamedColor{Name: "background", Value: p.Background},
		validation.NamedColor{Name: "surface", Value: p.Surface},
		validation.NamedColor{Name: "surface_variant", Value: p.SurfaceVariant},
		validation.NamedColor{Name: "text", Value: p.Text},
		validation.NamedColor{Name: "muted", Value: p.Muted},
		validation.NamedColor{Name: "accent", Value: p.Accent},
		validation.NamedColor{Name: "border", Value: p.Border},
	)
}
