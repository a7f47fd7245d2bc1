package config

// Config represents the complete configuration for vybe-theme.
type Config struct {
	// Theme holds the state manager options.
	Theme ThemeConfig `mapstructure:"theme" toml:"theme" json:"theme"`
	// Storage selects where the preference is persisted.
	Storage StorageConfig `mapstructure:"storage" toml:"storage" json:"storage"`
	// System controls operating system preference detection.
	System  SystemConfig  `mapstructure:"system" toml:"system" json:"system"`
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
	// Palette holds the colors emitted in the theme stylesheet.
	Palette PaletteConfig `mapstructure:"palette" toml:"palette" json:"palette"`
}

// ThemeConfig mirrors the manager options.
type ThemeConfig struct {
	DefaultTheme string `mapstructure:"default_theme" toml:"default_theme" json:"default_theme" jsonschema:"enum=dark,enum=light,default=dark"`
	StorageKey   string `mapstructure:"storage_key" toml:"storage_key" json:"storage_key" jsonschema:"default=vybe-theme"`
	// EnableSystem reconciles with the OS preference when nothing is stored.
	EnableSystem bool `mapstructure:"enable_system" toml:"enable_system" json:"enable_system" jsonschema:"default=true"`
	// FollowSystem applies live OS changes while no explicit choice exists.
	FollowSystem bool `mapstructure:"follow_system" toml:"follow_system" json:"follow_system" jsonschema:"default=false"`
}

// StorageBackend selects the preference store implementation.
type StorageBackend string

const (
	StorageBackendSQLite StorageBackend = "sqlite"
	StorageBackendFile   StorageBackend = "file"
	StorageBackendMemory StorageBackend = "memory"
)

// StorageConfig configures the preference store.
type StorageConfig struct {
	Backend StorageBackend `mapstructure:"backend" toml:"backend" json:"backend" jsonschema:"enum=sqlite,enum=file,enum=memory,default=sqlite"`
	// Path is the database file (sqlite) or directory (file).
	// Empty selects the XDG data directory.
	Path string `mapstructure:"path" toml:"path" json:"path"`
	// PollIntervalMs is how often the sqlite backend checks for writes from
	// other processes.
	PollIntervalMs int `mapstructure:"poll_interval_ms" toml:"poll_interval_ms" json:"poll_interval_ms" jsonschema:"minimum=0"`
}

// SystemConfig configures OS preference detection.
type SystemConfig struct {
	// ColorScheme forces the detected OS preference: default, prefer-dark or prefer-light.
	ColorScheme    string `mapstructure:"color_scheme" toml:"color_scheme" json:"color_scheme" jsonschema:"enum=default,enum=prefer-dark,enum=prefer-light,default=default"`
	PollIntervalMs int    `mapstructure:"poll_interval_ms" toml:"poll_interval_ms" json:"poll_interval_ms" jsonschema:"minimum=0"`
}

// LoggingConfig configures zerolog output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`

	// File output configuration
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1"`
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
}

// PaletteConfig holds one palette per theme mode.
type PaletteConfig struct {
	Light ColorPalette `mapstructure:"light" toml:"light" json:"light"`
	Dark  ColorPalette `mapstructure:"dark" toml:"dark" json:"dark"`
}

// ColorPalette holds user-editable colors. Empty values use the built-in palette.
type ColorPalette struct {
	Background     string `mapstructure:"background" toml:"background" json:"background"`
	Surface        string `mapstructure:"surface" toml:"surface" json:"surface"`
	SurfaceVariant string `mapstructure:"surface_variant" toml:"surface_variant" json:"surface_variant"`
	Text           string `mapstructure:"text" toml:"text" json:"text"`
	Muted          string `mapstructure:"muted" toml:"muted" json:"muted"`
	Accent         string `mapstructure:"accent" toml:"accent" json:"accent"`
	Border         string `mapstructure:"border" toml:"border" json:"border"`
}

// GetColorScheme returns the system.color_scheme override.
func (c *Config) GetColorScheme() string {
	return c.System.ColorScheme
}
