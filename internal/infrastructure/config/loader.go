// Package config loads the vybe-theme configuration from TOML and the
// environment, and watches it for changes.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/vybe/themesync/internal/domain/entity"
)

const envPrefix = "VYBE_THEME"

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config     *Config
	viper      *viper.Viper
	mu         sync.RWMutex
	callbacks  []func(*Config)
	watching   bool
	configFile string
	created    bool
}

// NewManager creates a configuration manager reading
// $XDG_CONFIG_HOME/vybe-theme/config.toml.
func NewManager() (*Manager, error) {
	configFile, err := GetConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerForFile(configFile)
}

// NewManagerForFile creates a configuration manager for an explicit file.
func NewManagerForFile(configFile string) (*Manager, error) {
	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("toml")

	// VYBE_THEME_THEME_DEFAULT_THEME, VYBE_THEME_STORAGE_BACKEND, ...
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short names shared with the logger bootstrap.
	if err := v.BindEnv("logging.level", envPrefix+"_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind %s_LOG_LEVEL: %w", envPrefix, err)
	}
	if err := v.BindEnv("logging.format", envPrefix+"_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind %s_LOG_FORMAT: %w", envPrefix, err)
	}

	return &Manager{
		viper:      v,
		configFile: configFile,
		callbacks:  make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing file is created with defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := normalizeConfig(config); err != nil {
		return err
	}
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.configFile,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf(
			"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
			rereadErr,
		)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.configFile,
			err,
		)
	}
	return config, nil
}

// createDefaultConfig writes the defaults and the JSON schema next to them.
func (m *Manager) createDefaultConfig() error {
	dir := filepath.Dir(m.configFile)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return err
	}
	if err := WriteConfigOrdered(DefaultConfig(), m.configFile); err != nil {
		return err
	}
	if err := GenerateSchemaFile(filepath.Join(dir, schemaFileName)); err != nil {
		return err
	}
	m.created = true
	return nil
}

// normalizeConfig canonicalizes enum spellings and fills default paths.
func normalizeConfig(config *Config) error {
	config.Theme.DefaultTheme = strings.ToLower(strings.TrimSpace(config.Theme.DefaultTheme))
	config.Theme.StorageKey = strings.TrimSpace(config.Theme.StorageKey)
	config.Storage.Backend = StorageBackend(strings.ToLower(strings.TrimSpace(string(config.Storage.Backend))))
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))

	// "dark"/"light" are accepted shorthands for the override.
	if raw := strings.TrimSpace(config.System.ColorScheme); raw == "" || entity.ParseColorScheme(raw) != entity.ColorSchemeDefault {
		config.System.ColorScheme = string(entity.ParseColorScheme(raw))
	} else {
		config.System.ColorScheme = strings.ToLower(raw)
	}

	if config.Storage.Path == "" {
		var err error
		switch config.Storage.Backend {
		case StorageBackendSQLite:
			config.Storage.Path, err = GetDatabaseFile()
		case StorageBackendFile:
			config.Storage.Path, err = GetPreferenceDir()
		}
		if err != nil {
			return fmt.Errorf("failed to get storage path: %w", err)
		}
	}

	if config.Logging.EnableFileLog && config.Logging.LogDir == "" {
		logDir, err := GetLogDir()
		if err != nil {
			return fmt.Errorf("failed to get log directory: %w", err)
		}
		config.Logging.LogDir = logDir
	}
	return nil
}

// Get returns a copy of the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file.
func (m *Manager) GetConfigFile() string {
	return m.configFile
}

// Created reports whether Load wrote a default config file.
func (m *Manager) Created() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.created
}

// GetColorScheme implements the system preference override provider and
// always reflects the latest reload.
func (m *Manager) GetColorScheme() string {
	return m.Get().System.ColorScheme
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("theme.default_theme", defaults.Theme.DefaultTheme)
	m.viper.SetDefault("theme.storage_key", defaults.Theme.StorageKey)
	m.viper.SetDefault("theme.enable_system", defaults.Theme.EnableSystem)
	m.viper.SetDefault("theme.follow_system", defaults.Theme.FollowSystem)

	m.viper.SetDefault("storage.backend", string(defaults.Storage.Backend))
	m.viper.SetDefault("storage.path", defaults.Storage.Path)
	m.viper.SetDefault("storage.poll_interval_ms", defaults.Storage.PollIntervalMs)

	m.viper.SetDefault("system.color_scheme", defaults.System.ColorScheme)
	m.viper.SetDefault("system.poll_interval_ms", defaults.System.PollIntervalMs)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)

	m.setPaletteDefaults("palette.light", defaults.Palette.Light)
	m.setPaletteDefaults("palette.dark", defaults.Palette.Dark)
}

func (m *Manager) setPaletteDefaults(prefix string, p ColorPalette) {
	m.viper.SetDefault(prefix+".background", p.Background)
	m.viper.SetDefault(prefix+".surface", p.Surface)
	m.viper.SetDefault(prefix+".surface_variant", p.SurfaceVariant)
	m.viper.SetDefault(prefix+".text", p.Text)
	m.viper.SetDefault(prefix+".muted", p.Muted)
	m.viper.SetDefault(prefix+".accent", p.Accent)
	m.viper.SetDefault(prefix+".border", p.Border)
}
