package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	envLogLevel  = "VYBE_THEME_LOG_LEVEL"
	envLogFormat = "VYBE_THEME_LOG_FORMAT"

	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
	// Output defaults to os.Stderr.
	Output io.Writer
	// File, when set, receives a JSON copy of every event.
	File io.Writer
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     FormatConsole,
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	var output io.Writer = out
	if cfg.Format == FormatConsole {
		output = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: cfg.TimeFormat,
		}
	}
	if cfg.File != nil {
		output = zerolog.MultiLevelWriter(output, cfg.File)
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// ParseLevel maps a config/env level name to a zerolog level.
// Unknown names fall back to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// NewFromEnv creates a logger based on environment variables
// VYBE_THEME_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// VYBE_THEME_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return New(ApplyEnv(DefaultConfig()))
}

// ApplyEnv overrides cfg with any logging variables set in the environment.
func ApplyEnv(cfg Config) Config {
	if level := os.Getenv(envLogLevel); level != "" {
		cfg.Level = ParseLevel(level)
	}
	switch format := os.Getenv(envLogFormat); format {
	case FormatJSON, FormatConsole:
		cfg.Format = format
	}
	return cfg
}
