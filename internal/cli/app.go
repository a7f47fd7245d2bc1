// Package cli wires configuration, storage and the theme manager for the
// command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/vybe/themesync/internal/application/port"
	"github.com/vybe/themesync/internal/cli/styles"
	"github.com/vybe/themesync/internal/domain/build"
	"github.com/vybe/themesync/internal/domain/entity"
	"github.com/vybe/themesync/internal/infrastructure/colorscheme"
	"github.com/vybe/themesync/internal/infrastructure/config"
	"github.com/vybe/themesync/internal/infrastructure/persistence/file"
	"github.com/vybe/themesync/internal/infrastructure/persistence/memory"
	"github.com/vybe/themesync/internal/infrastructure/persistence/sqlite"
	"github.com/vybe/themesync/internal/infrastructure/xdg"
	"github.com/vybe/themesync/internal/logging"
	"github.com/vybe/themesync/internal/ui/theme"
)

const dataDirPerm = 0o750

// Options controls how the App is built.
type Options struct {
	// ConfigFile overrides the XDG config file.
	ConfigFile string
	// Backend overrides storage.backend.
	Backend string
	// LogOutput overrides stderr for log output.
	LogOutput io.Writer
}

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info

	Store    port.PreferenceStore
	Watcher  port.PreferenceWatcher
	Resolver *colorscheme.Resolver
	Paths    port.XDGPaths
	// Location is the database file or preference directory.
	Location string

	db      *sqlite.LazyDB
	rotator *logging.FileRotator
	manager *theme.Manager
	closed  bool

	// Context with logger
	ctx context.Context
}

// NewApp creates a new CLI application with all dependencies.
func NewApp(opts Options) (*App, error) {
	bootLog := logging.NewFromEnv()

	mgr, cfg, err := loadConfig(opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	if mgr.Created() {
		bootLog.Info().Str("path", mgr.GetConfigFile()).Msg("created default config")
	}
	if opts.Backend != "" {
		cfg.Storage.Backend = config.StorageBackend(opts.Backend)
		cfg.Storage.Path = ""
	}

	logger, rotator, err := newLogger(cfg, opts)
	if err != nil {
		return nil, err
	}
	ctx := logging.WithContext(context.Background(), logger)

	app := &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         styles.NewTheme(cfg, entity.ThemeMode(cfg.Theme.DefaultTheme)),
		Resolver:      colorscheme.NewResolver(colorscheme.DefaultDetectors(mgr)...),
		Paths:         xdg.New(),
		rotator:       rotator,
		ctx:           ctx,
	}

	if err := app.openStore(ctx); err != nil {
		_ = app.Close()
		return nil, err
	}

	logger.Debug().
		Str("backend", string(cfg.Storage.Backend)).
		Str("location", app.Location).
		Msg("preference store ready")

	return app, nil
}

// loadConfig reads the config file, creating it on first run.
func loadConfig(path string) (*config.Manager, *config.Config, error) {
	var (
		mgr *config.Manager
		err error
	)
	if path != "" {
		mgr, err = config.NewManagerForFile(path)
	} else {
		mgr, err = config.NewManager()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	return mgr, mgr.Get(), nil
}

func newLogger(cfg *config.Config, opts Options) (zerolog.Logger, *logging.FileRotator, error) {
	logCfg := logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	}
	if opts.LogOutput != nil {
		logCfg.Output = opts.LogOutput
	}
	logCfg = logging.ApplyEnv(logCfg)

	var rotator *logging.FileRotator
	if cfg.Logging.EnableFileLog {
		var err error
		rotator, err = logging.NewFileRotator(cfg.Logging.LogDir, "vybe-theme.log", cfg.Logging.MaxSizeMB, cfg.Logging.MaxBackups)
		if err != nil {
			return zerolog.Logger{}, nil, fmt.Errorf("open log file: %w", err)
		}
		logCfg.File = rotator
	}

	return logging.New(logCfg), rotator, nil
}

func (a *App) openStore(ctx context.Context) error {
	storage := a.Config.Storage

	switch storage.Backend {
	case config.StorageBackendSQLite:
		path := storage.Path
		if path == "" {
			var err error
			if path, err = config.GetDatabaseFile(); err != nil {
				return fmt.Errorf("resolve database path: %w", err)
			}
		}
		if err := os.MkdirAll(filepath.Dir(path), dataDirPerm); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
		a.db = sqlite.NewLazyDB(path)
		repo := sqlite.NewPreferenceRepository(a.db, time.Duration(storage.PollIntervalMs)*time.Millisecond)
		a.Store, a.Watcher, a.Location = repo, repo, path

	case config.StorageBackendFile:
		dir := storage.Path
		if dir == "" {
			var err error
			if dir, err = config.GetPreferenceDir(); err != nil {
				return fmt.Errorf("resolve preference dir: %w", err)
			}
		}
		store := file.NewStore(dir)
		a.Store, a.Watcher, a.Location = store, store, dir

	case config.StorageBackendMemory:
		a.Store, a.Location = memory.NewStore(nil), "memory"

	default:
		return fmt.Errorf("unknown storage backend %q", storage.Backend)
	}

	logging.FromContext(ctx).Debug().Str("backend", string(storage.Backend)).Msg("storage backend selected")
	return nil
}

// ManagerOptions converts the theme config to manager options.
func (a *App) ManagerOptions() theme.Options {
	return theme.Options{
		DefaultTheme: entity.ThemeMode(a.Config.Theme.DefaultTheme),
		StorageKey:   a.Config.Theme.StorageKey,
		EnableSystem: a.Config.Theme.EnableSystem,
		FollowSystem: a.Config.Theme.FollowSystem,
	}
}

// MountTheme bootstraps root from the store and then mounts a manager over
// it. The manager is installed in the App context so commands reach it
// through theme.FromContext. Calling it twice returns the same manager.
func (a *App) MountTheme(root port.DocumentRoot) *theme.Manager {
	if a.manager != nil {
		return a.manager
	}

	opts := a.ManagerOptions()
	ctx := logging.WithStorageKey(a.ctx, opts.StorageKey)

	theme.Bootstrap(ctx, a.Store, root, opts.StorageKey, opts.DefaultTheme)

	m := theme.NewManager(ctx, a.Store, root, a.Resolver, opts)
	state := m.Mount(ctx)

	a.manager = m
	a.ctx = theme.WithManager(a.ctx, m)
	a.Theme = styles.NewTheme(a.Config, state.Theme)
	return m
}

// ClearPreference deletes the stored preference.
func (a *App) ClearPreference(ctx context.Context) error {
	if err := a.Store.Delete(ctx, a.Config.Theme.StorageKey); err != nil {
		return fmt.Errorf("clear preference: %w", err)
	}
	return nil
}

// Close releases all resources. Later calls do nothing.
func (a *App) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true

	var errs []error
	if a.manager != nil {
		a.manager.Close()
	}
	if a.db != nil {
		errs = append(errs, a.db.Close())
	}
	if a.rotator != nil {
		errs = append(errs, a.rotator.Close())
	}
	return errors.Join(errs...)
}

// Closed reports whether Close has run.
func (a *App) Closed() bool {
	return a.closed
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
