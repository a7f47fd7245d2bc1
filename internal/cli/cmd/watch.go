package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vybe/themesync/internal/cli"
	"github.com/vybe/themesync/internal/cli/styles"
	"github.com/vybe/themesync/internal/infrastructure/colorscheme"
	"github.com/vybe/themesync/internal/infrastructure/config"
	"github.com/vybe/themesync/internal/infrastructure/document"
	"github.com/vybe/themesync/internal/logging"
	"github.com/vybe/themesync/internal/ui/theme"
)

var watchNoConfig bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print every theme change until interrupted",
	Long: `Mount the theme manager and print its state whenever it changes: writes
from other processes, operating system color scheme changes and config edits
to system.color_scheme.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().BoolVar(&watchNoConfig, "no-config-watch", false, "do not reload the config file on change")
}

func runWatch(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(a.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := a.MountTheme(document.NewRoot())
	renderer := styles.NewStatusRenderer(a.Theme)
	out := cmd.OutOrStdout()

	var mu sync.Mutex
	printState := func(state theme.State) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintln(out, renderer.RenderWatchEvent(state))
	}
	printState(m.State())
	unsubscribe := m.Subscribe(printState)
	defer unsubscribe()

	return runWatchers(ctx, a, m, !watchNoConfig)
}

// runWatchers feeds the system poller, the storage watcher and optionally
// the config watcher into m until ctx is done.
func runWatchers(ctx context.Context, a *cli.App, m *theme.Manager, watchConfig bool) error {
	ctx = logging.WithComponent(ctx, "watch")
	log := logging.FromContext(ctx)
	g, ctx := errgroup.WithContext(ctx)

	if m.Options().EnableSystem {
		interval := time.Duration(a.Config.System.PollIntervalMs) * time.Millisecond
		g.Go(func() error {
			return colorscheme.Watch(ctx, a.Resolver, interval)
		})
	}

	if a.Watcher != nil {
		g.Go(func() error {
			return m.WatchStorage(ctx, a.Watcher)
		})
	}

	if watchConfig {
		a.ConfigManager.OnConfigChange(func(cfg *config.Config) {
			log.Debug().Str("color_scheme", cfg.System.ColorScheme).Msg("config reloaded")
			a.Resolver.Refresh()
		})
		if err := a.ConfigManager.Watch(log); err != nil {
			log.Warn().Err(err).Msg("config watch unavailable")
		}
	}

	log.Debug().
		Bool("system", m.Options().EnableSystem).
		Bool("storage", a.Watcher != nil).
		Bool("config", watchConfig).
		Msg("watching for theme changes")

	return g.Wait()
}
