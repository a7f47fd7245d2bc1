package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vybe/themesync/internal/cli"
	"github.com/vybe/themesync/internal/cli/styles"
	"github.com/vybe/themesync/internal/ui/theme"
)

var (
	scriptTag   bool
	scriptNonce string
	scriptHash  bool
	scriptCheck bool
)

var scriptCmd = &cobra.Command{
	Use:   "script",
	Short: "Print the inline bootstrap script for HTML pages",
	Long: `Print the JavaScript snippet that applies the stored theme marker before
the first paint. Place it at the top of <head>, before any stylesheet.

Use --hash to print the CSP source expression for the snippet, or --check to
run it against simulated browser storage.`,
	Args: cobra.NoArgs,
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(scriptCmd)
	scriptCmd.Flags().BoolVar(&scriptTag, "tag", false, "wrap the snippet in a <script> element")
	scriptCmd.Flags().StringVar(&scriptNonce, "nonce", "", "CSP nonce for the <script> element (implies --tag)")
	scriptCmd.Flags().BoolVar(&scriptHash, "hash", false, "print the CSP sha256 source for the snippet")
	scriptCmd.Flags().BoolVar(&scriptCheck, "check", false, "evaluate the snippet against simulated storage")
	scriptCmd.MarkFlagsMutuallyExclusive("hash", "check")
}

func runScript(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	opts := theme.ScriptOptionsFrom(a.ManagerOptions())
	opts.Nonce = scriptNonce
	out := cmd.OutOrStdout()

	switch {
	case scriptHash:
		fmt.Fprintf(out, "'%s'\n", theme.ScriptHash(opts))
	case scriptCheck:
		return printScriptChecks(cmd, a, opts)
	case scriptTag || scriptNonce != "":
		fmt.Fprintln(out, theme.ScriptTag(opts))
	default:
		fmt.Fprintln(out, theme.Script(opts))
	}
	return nil
}

func printScriptChecks(cmd *cobra.Command, a *cli.App, opts theme.ScriptOptions) error {
	t := a.Theme
	pass := lipgloss.NewStyle().Foreground(t.Success).Render(styles.IconCheck)
	fail := lipgloss.NewStyle().Foreground(t.Error).Render(styles.IconX)

	var sb strings.Builder
	failed := 0
	for _, c := range cli.VerifyScript(opts) {
		icon := pass
		if !c.Passed() {
			icon = fail
			failed++
		}
		fmt.Fprintf(&sb, "  %s %-22s want %-5s got %v scheme=%q\n",
			icon, c.Name, c.Want, c.Result.Classes, c.Result.ColorScheme)
		if c.Err != nil {
			fmt.Fprintf(&sb, "      %s\n", t.ErrorStyle.Render(c.Err.Error()))
		}
	}
	fmt.Fprint(cmd.OutOrStdout(), sb.String())

	if failed > 0 {
		return errors.New("bootstrap script check failed")
	}
	return nil
}
