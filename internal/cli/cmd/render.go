package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vybe/themesync/internal/application/port"
	"github.com/vybe/themesync/internal/infrastructure/document"
	"github.com/vybe/themesync/internal/logging"
	"github.com/vybe/themesync/internal/ui/theme"
)

var (
	renderOutput   string
	renderNonce    string
	renderTailwind bool
	renderNoStyle  bool
)

var renderCmd = &cobra.Command{
	Use:   "render [file.html]",
	Short: "Pre-render an HTML page with the bootstrap script injected",
	Long: `Inject the bootstrap script and theme stylesheet at the top of <head>.

The theme resolved here (stored, system or default) becomes the script's
fallback and the color-scheme hint of <html>. Any dark or light class already
on <html> is removed so the script alone picks the marker in the browser.

Reads stdin when no file (or "-") is given. Rendering an already rendered
page replaces the injected elements.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "write to file instead of stdout")
	renderCmd.Flags().StringVar(&renderNonce, "nonce", "", "CSP nonce for the injected script")
	renderCmd.Flags().BoolVar(&renderTailwind, "tailwind", false, "include Tailwind variable names in the stylesheet")
	renderCmd.Flags().BoolVar(&renderNoStyle, "no-style", false, "do not inject the theme stylesheet")
}

func runRender(cmd *cobra.Command, args []string) (err error) {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ctx := logging.WithComponent(a.Ctx(), "render")

	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, openErr := os.Open(args[0])
		if openErr != nil {
			return fmt.Errorf("open input: %w", openErr)
		}
		defer f.Close()
		in = f
	}

	var out io.Writer = cmd.OutOrStdout()
	if renderOutput != "" {
		f, createErr := os.Create(renderOutput)
		if createErr != nil {
			return fmt.Errorf("create output: %w", createErr)
		}
		defer func() {
			if closeErr := f.Close(); err == nil {
				err = closeErr
			}
		}()
		out = f
	}

	resolved := a.MountTheme(document.NewRoot()).Theme()
	scriptOpts := theme.ScriptOptionsFrom(a.ManagerOptions())
	scriptOpts.Fallback = resolved

	renderOpts := document.RenderOptions{
		Apply: func(root port.DocumentRoot) {
			theme.ClearMarker(root)
			root.SetStyleProperty(theme.ColorSchemeProperty, resolved.String())
		},
		Script:      theme.Script(scriptOpts),
		ScriptNonce: renderNonce,
	}
	if !renderNoStyle {
		if renderOpts.Stylesheet, err = stylesheet(a.Config, renderTailwind); err != nil {
			return err
		}
	}

	return document.Render(ctx, in, out, renderOpts)
}
