// Package validation holds value checks shared by configuration and theme code.
package validation

import (
	"fmt"
	"regexp"
)

var hexColorRE = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})$`)

// IsHexColor reports whether value is #RGB, #RRGGBB or #RRGGBBAA.
func IsHexColor(value string) bool {
	return hexColorRE.MatchString(value)
}

// NamedColor is one palette entry to validate.
type NamedColor struct {
	Name  string
	Value string
}

// ValidatePaletteHex returns one message per non-empty entry that is not a
// hex color. Empty entries fall back to the built-in palette and are valid.
func ValidatePaletteHex(prefix string, colors ...NamedColor) []string {
	var errs []string
	for _, c := range colors {
		if c.Value != "" && !IsHexColor(c.Value) {
			errs = append(errs, fmt.Sprintf("%s.%s must be a hex color (got: %s)", prefix, c.Name, c.Value))
		}
	}
	return errs
}
