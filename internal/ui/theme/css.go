package theme

import (
	"strings"

	"github.com/vybe/themesync/internal/domain/entity"
)

// StylesheetOptions controls GenerateStylesheet.
type StylesheetOptions struct {
	// Tailwind adds the shadcn/Tailwind variable names to each block.
	Tailwind bool
}

// GenerateStylesheet emits the theme-scoped CSS: a :root block advertising
// both schemes, then one block per marker class. The class marker on the
// root element selects which block applies.
func GenerateStylesheet(palettes Palettes, opts StylesheetOptions) string {
	var sb strings.Builder

	sb.WriteString("/* Theme variables */\n")
	sb.WriteString(":root {\n")
	sb.WriteString("  color-scheme: light dark;\n")
	sb.WriteString("}\n\n")

	writeModeBlock(&sb, entity.ThemeLight, palettes.Light, opts)
	sb.WriteString("\n")
	writeModeBlock(&sb, entity.ThemeDark, palettes.Dark, opts)

	sb.WriteString("\n")
	sb.WriteString(generateBaseCSS())

	return sb.String()
}

func writeModeBlock(sb *strings.Builder, mode entity.ThemeMode, p Palette, opts StylesheetOptions) {
	sb.WriteString(":root." + mode.String() + " {\n")
	sb.WriteString("  color-scheme: " + mode.String() + ";\n")
	p.writeCSSVars(sb, opts.Tailwind)
	sb.WriteString("}\n")
}

// generateBaseCSS wires the variables to the document itself.
func generateBaseCSS() string {
	return `/* Base */
body {
  background-color: var(--bg);
  color: var(--text);
}

a {
  color: var(--accent);
}

hr {
  border-color: var(--border);
}
`
}
