// Package cmd provides Cobra CLI commands for vybe-theme.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vybe/themesync/internal/cli"
	"github.com/vybe/themesync/internal/domain/build"
)

var (
	app         *cli.App
	buildInfo   build.Info
	flagConfig  string
	flagBackend string

	rootCmd = &cobra.Command{
		Use:   "vybe-theme",
		Short: "Persist and synchronize the dark/light theme preference",
		Long: `vybe-theme keeps one dark/light preference in sync between the pre-render
bootstrap snippet, the state manager and every process watching the store.

The preference is resolved in order: the stored choice, then the operating
system color scheme (when enabled), then the configured default.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "version", "schema":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{ConfigFile: flagConfig, Backend: flagBackend})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default $XDG_CONFIG_HOME/vybe-theme/config.toml)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "override storage.backend (sqlite, file, memory)")
}

// Execute runs the root command.
func Execute() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// execute runs the root command and closes the app even when the command
// failed, since cobra skips post-run hooks on error.
func execute() error {
	defer func() {
		if app == nil {
			return
		}
		if err := app.Close(); err != nil {
			fmt.Fprintln(os.Stderr, "close:", err)
		}
	}()
	return rootCmd.Execute()
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
	rootCmd.Version = info.Version
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

func requireApp() (*cli.App, error) {
	if app == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return app, nil
}
