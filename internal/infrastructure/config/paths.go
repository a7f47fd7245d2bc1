package config

import (
	"os"
	"path/filepath"
)

const (
	appName          = "vybe-theme"
	databaseName     = "vybe-theme.sqlite"
	configFileName   = "config.toml"
	schemaFileName   = "config.schema.json"
	preferenceDir    = "preferences"
	logDirName       = "logs"
	dirPerm          = 0o750
	filePerm         = 0o600
	envDevMode       = "ENV"
	envDevModeValue  = "dev"
	devDirectoryName = ".dev"
)

// XDGDirs holds the XDG Base Directory paths for the application.
type XDGDirs struct {
	ConfigHome string
	DataHome   string
	StateHome  string
}

// GetXDGDirs returns the XDG Base Directory paths for vybe-theme:
// - $XDG_CONFIG_HOME/vybe-theme (default: ~/.config/vybe-theme)
// - $XDG_DATA_HOME/vybe-theme (default: ~/.local/share/vybe-theme)
// - $XDG_STATE_HOME/vybe-theme (default: ~/.local/state/vybe-theme)
//
// With ENV=dev everything lives under ./.dev/vybe-theme.
func GetXDGDirs() (*XDGDirs, error) {
	if os.Getenv(envDevMode) == envDevModeValue {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		devDir := filepath.Join(cwd, devDirectoryName, appName)
		return &XDGDirs{ConfigHome: devDir, DataHome: devDir, StateHome: devDir}, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	return &XDGDirs{
		ConfigHome: filepath.Join(xdgBase("XDG_CONFIG_HOME", homeDir, ".config"), appName),
		DataHome:   filepath.Join(xdgBase("XDG_DATA_HOME", homeDir, ".local", "share"), appName),
		StateHome:  filepath.Join(xdgBase("XDG_STATE_HOME", homeDir, ".local", "state"), appName),
	}, nil
}

func xdgBase(env, home string, fallback ...string) string {
	if v := os.Getenv(env); v != "" {
		return v
	}
	return filepath.Join(append([]string{home}, fallback...)...)
}

// GetConfigDir returns the XDG config directory.
func GetConfigDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.ConfigHome, nil
}

// GetDataDir returns the XDG data directory.
func GetDataDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.DataHome, nil
}

// GetStateDir returns the XDG state directory.
func GetStateDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.StateHome, nil
}

// GetLogDir returns the log directory. Logs are state, not data.
func GetLogDir() (string, error) {
	stateDir, err := GetStateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(stateDir, logDirName), nil
}

// GetConfigFile returns the path to the main configuration file.
func GetConfigFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFileName), nil
}

// GetDatabaseFile returns the default SQLite preference database path.
// The preference outlives sessions, so it belongs in XDG_DATA_HOME.
func GetDatabaseFile() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, databaseName), nil
}

// GetPreferenceDir returns the default directory of the file backend.
func GetPreferenceDir() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, preferenceDir), nil
}
