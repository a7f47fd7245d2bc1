package port

// XDGPaths provides XDG Base Directory paths for the application.
type XDGPaths interface {
	ConfigDir() (string, error)
	DataDir() (string, error)
	StateDir() (string, error)
	LogDir() (string, error)
}
