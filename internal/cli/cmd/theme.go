package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vybe/themesync/internal/cli/styles"
	"github.com/vybe/themesync/internal/domain/entity"
	"github.com/vybe/themesync/internal/infrastructure/document"
	"github.com/vybe/themesync/internal/ui/theme"
)

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the effective theme",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		a.MountTheme(document.NewRoot())

		fmt.Fprintln(cmd.OutOrStdout(), theme.FromContext(a.Ctx()).Theme())
		return nil
	},
}

var setCmd = &cobra.Command{
	Use:       "set <dark|light>",
	Short:     "Store an explicit theme preference",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(entity.ThemeDark), string(entity.ThemeLight)},
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		mode, err := entity.ParseThemeMode(args[0])
		if err != nil {
			return err
		}
		a.MountTheme(document.NewRoot())

		if err := theme.FromContext(a.Ctx()).SetTheme(a.Ctx(), mode); err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), styles.NewStatusRenderer(styles.NewTheme(a.Config, mode)).RenderChanged(mode))
		return nil
	},
}

var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch to the opposite theme and store it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		a.MountTheme(document.NewRoot())

		mode, err := theme.FromContext(a.Ctx()).ToggleTheme(a.Ctx())
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), styles.NewStatusRenderer(styles.NewTheme(a.Config, mode)).RenderChanged(mode))
		return nil
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the stored preference",
	Long:  `Delete the stored preference so the theme follows the system or the default again.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		if err := a.ClearPreference(a.Ctx()); err != nil {
			return err
		}
		state := a.MountTheme(document.NewRoot()).State()

		fmt.Fprint(cmd.OutOrStdout(), styles.NewStatusRenderer(a.Theme).RenderCleared(a.Config.Theme.StorageKey, state))
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the effective theme, its source and the storage location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		state := a.MountTheme(document.NewRoot()).State()

		fmt.Fprint(cmd.OutOrStdout(), styles.NewStatusRenderer(a.Theme).RenderStatus(state, styles.StatusInfo{
			StorageKey: a.Config.Theme.StorageKey,
			Backend:    string(a.Config.Storage.Backend),
			Location:   a.Location,
			ConfigFile: a.ConfigManager.GetConfigFile(),
		}))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd, setCmd, toggleCmd, clearCmd, statusCmd)
}
