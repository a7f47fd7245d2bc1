package theme

import (
	"errors"
	"strings"

	"github.com/vybe/themesync/internal/domain/entity"
	"github.com/vybe/themesync/internal/domain/validation"
	"github.com/vybe/themesync/internal/infrastructure/config"
)

// Palette holds the colors of one theme mode.
type Palette struct {
	Background     string
	Surface        string
	SurfaceVariant string
	Text           string
	Muted          string
	Accent         string
	Border         string
	Success        string
	Warning        string
	Destructive    string
}

// Palettes pairs the palette behind each root marker.
type Palettes struct {
	Light Palette
	Dark  Palette
}

// paletteField binds a palette color to its config key and CSS variable.
// fromConfig is nil for status colors, which are not user-editable.
type paletteField struct {
	key        string
	cssVar     string
	ref        func(*Palette) *string
	fromConfig func(config.ColorPalette) string
}

var paletteFields = []paletteField{
	{"background", "--bg", func(p *Palette) *string { return &p.Background }, func(c config.ColorPalette) string { return c.Background }},
	{"surface", "--surface", func(p *Palette) *string { return &p.Surface }, func(c config.ColorPalette) string { return c.Surface }},
	{"surface_variant", "--surface-variant", func(p *Palette) *string { return &p.SurfaceVariant }, func(c config.ColorPalette) string { return c.SurfaceVariant }},
	{"text", "--text", func(p *Palette) *string { return &p.Text }, func(c config.ColorPalette) string { return c.Text }},
	{"muted", "--muted", func(p *Palette) *string { return &p.Muted }, func(c config.ColorPalette) string { return c.Muted }},
	{"accent", "--accent", func(p *Palette) *string { return &p.Accent }, func(c config.ColorPalette) string { return c.Accent }},
	{"border", "--border", func(p *Palette) *string { return &p.Border }, func(c config.ColorPalette) string { return c.Border }},
	{"success", "--success", func(p *Palette) *string { return &p.Success }, nil},
	{"warning", "--warning", func(p *Palette) *string { return &p.Warning }, nil},
	{"destructive", "--destructive", func(p *Palette) *string { return &p.Destructive }, nil},
}

// tailwindVars maps shadcn/Tailwind variable names onto palette colors.
var tailwindVars = []struct {
	name  string
	color func(Palette) string
}{
	{"--background", func(p Palette) string { return p.Background }},
	{"--foreground", func(p Palette) string { return p.Text }},
	{"--card", func(p Palette) string { return p.Surface }},
	{"--card-foreground", func(p Palette) string { return p.Text }},
	{"--primary", func(p Palette) string { return p.Accent }},
	{"--primary-foreground", func(p Palette) string { return p.Background }},
	{"--muted", func(p Palette) string { return p.SurfaceVariant }},
	{"--muted-foreground", func(p Palette) string { return p.Muted }},
	{"--border", func(p Palette) string { return p.Border }},
	{"--ring", func(p Palette) string { return p.Accent }},
	{"--destructive", func(p Palette) string { return p.Destructive }},
	{"--destructive-foreground", func(p Palette) string { return p.Background }},
}

// DefaultPalettes returns the built-in light and dark palettes.
func DefaultPalettes() Palettes {
	return Palettes{
		Light: Palette{
			Background:     "#fafafa",
			Surface:        "#ffffff",
			SurfaceVariant: "#f0f0f0",
			Text:           "#1a1a1a",
			Muted:          "#666666",
			Accent:         "#22c55e",
			Border:         "#dddddd",
			Success:        "#22c55e",
			Warning:        "#f59e0b",
			Destructive:    "#dc2626",
		},
		Dark: Palette{
			Background:     "#0a0a0b",
			Surface:        "#1a1a1b",
			SurfaceVariant: "#2d2d2d",
			Text:           "#ffffff",
			Muted:          "#909090",
			Accent:         "#4ade80",
			Border:         "#333333",
			Success:        "#4ade80",
			Warning:        "#fbbf24",
			Destructive:    "#ef4444",
		},
	}
}

// LoadPalettes overlays the configured colors on the built-in palettes.
func LoadPalettes(cfg *config.PaletteConfig) Palettes {
	p := DefaultPalettes()
	if cfg == nil {
		return p
	}
	p.Light = p.Light.overlay(cfg.Light)
	p.Dark = p.Dark.overlay(cfg.Dark)
	return p
}

func (p Palette) overlay(c config.ColorPalette) Palette {
	for _, f := range paletteFields {
		if f.fromConfig == nil {
			continue
		}
		if v := f.fromConfig(c); v != "" {
			*f.ref(&p) = v
		}
	}
	return p
}

// For returns the palette applied under mode.
func (p Palettes) For(mode entity.ThemeMode) Palette {
	if mode == entity.ThemeLight {
		return p.Light
	}
	return p.Dark
}

// Validate reports every color of either palette that is not a hex value.
func (p Palettes) Validate() error {
	msgs := append(p.Light.invalid("palette.light"), p.Dark.invalid("palette.dark")...)
	if len(msgs) == 0 {
		return nil
	}
	return errors.New(strings.Join(msgs, "; "))
}

func (p Palette) invalid(prefix string) []string {
	colors := make([]validation.NamedColor, 0, len(paletteFields))
	for _, f := range paletteFields {
		colors = append(colors, validation.NamedColor{Name: f.key, Value: *f.ref(&p)})
	}
	return validation.ValidatePaletteHex(prefix, colors...)
}

func (p Palette) writeCSSVars(sb *strings.Builder, tailwind bool) {
	for _, f := range paletteFields {
		sb.WriteString("  " + f.cssVar + ": " + *f.ref(&p) + ";\n")
	}
	if !tailwind {
		return
	}
	for _, v := range tailwindVars {
		sb.WriteString("  " + v.name + ": " + v.color(p) + ";\n")
	}
}
