package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vybe/themesync/internal/infrastructure/config"
	"github.com/vybe/themesync/internal/ui/theme"
)

var cssTailwind bool

var cssCmd = &cobra.Command{
	Use:   "css",
	Short: "Print the theme stylesheet",
	Long: `Print CSS variables for both palettes, scoped to the .light and .dark
classes that the bootstrap script puts on the root element.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		css, err := stylesheet(a.Config, cssTailwind)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), css)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cssCmd)
	cssCmd.Flags().BoolVar(&cssTailwind, "tailwind", false, "include Tailwind variable names")
}

func stylesheet(cfg *config.Config, tailwind bool) (string, error) {
	palettes := theme.LoadPalettes(&cfg.Palette)
	if err := palettes.Validate(); err != nil {
		return "", fmt.Errorf("invalid palette: %w", err)
	}
	return theme.GenerateStylesheet(palettes, theme.StylesheetOptions{Tailwind: tailwind}), nil
}
