package xdg

import (
	"github.com/vybe/themesync/internal/application/port"
	"github.com/vybe/themesync/internal/infrastructure/config"
)

// Adapter implements port.XDGPaths using the config path helpers.
type Adapter struct{}

// New creates a new XDG paths adapter.
func New() *Adapter {
	return &Adapter{}
}

func (a *Adapter) ConfigDir() (string, error) {
	return config.GetConfigDir()
}

func (a *Adapter) DataDir() (string, error) {
	return config.GetDataDir()
}

func (a *Adapter) StateDir() (string, error) {
	return config.GetStateDir()
}

func (a *Adapter) LogDir() (string, error) {
	return config.GetLogDir()
}

var _ port.XDGPaths = (*Adapter)(nil)
