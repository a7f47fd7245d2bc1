package cmd

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vybe/themesync/internal/cli/model"
	"github.com/vybe/themesync/internal/infrastructure/document"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive dark/light toggle",
	Long: `Open an interactive toggle bound to the theme manager. Changes made by
other processes or by the operating system show up live.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(a.Ctx())
	defer cancel()

	m := a.MountTheme(document.NewRoot())
	toggle := model.NewToggleModel(ctx, m, a.Config)
	defer toggle.Close()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return runWatchers(gctx, a, m, true)
	})

	_, runErr := tea.NewProgram(toggle).Run()
	cancel()
	waitErr := g.Wait()

	if runErr != nil {
		return fmt.Errorf("run toggle: %w", runErr)
	}
	if waitErr != nil && !errors.Is(waitErr, context.Canceled) {
		return waitErr
	}
	return nil
}
