package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vybe/themesync/internal/cli/styles"
	"github.com/vybe/themesync/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		path := a.ConfigManager.GetConfigFile()
		_, statErr := os.Stat(path)

		renderer := styles.NewStatusRenderer(a.Theme)
		out := cmd.OutOrStdout()
		fmt.Fprint(out, renderer.RenderConfigPath(path, statErr == nil))

		dirs := []struct {
			name string
			fn   func() (string, error)
		}{
			{"config", a.Paths.ConfigDir},
			{"data", a.Paths.DataDir},
			{"state", a.Paths.StateDir},
			{"logs", a.Paths.LogDir},
		}
		for _, d := range dirs {
			dir, err := d.fn()
			if err != nil {
				return fmt.Errorf("resolve %s dir: %w", d.name, err)
			}
			fmt.Fprint(out, renderer.RenderDir(d.name, dir))
		}
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Long:  `Print the configuration after defaults, environment overrides and normalization.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		return config.Encode(cmd.OutOrStdout(), a.Config)
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := config.GenerateSchema()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configShowCmd, configSchemaCmd)
}
