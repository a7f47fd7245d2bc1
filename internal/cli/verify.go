package cli

import (
	"fmt"
	"slices"

	"github.com/vybe/themesync/internal/domain/entity"
	"github.com/vybe/themesync/internal/infrastructure/jsruntime"
	"github.com/vybe/themesync/internal/ui/theme"
)

// ScriptCheck is the outcome of running the bootstrap snippet in one
// simulated browser state.
type ScriptCheck struct {
	Name   string
	Want   entity.ThemeMode
	Result jsruntime.Result
	Err    error
}

// Passed reports whether the root ended with exactly the wanted marker after
// one class write and one style write.
func (c ScriptCheck) Passed() bool {
	return c.Err == nil &&
		slices.Equal(c.Result.Classes, []string{c.Want.String()}) &&
		c.Result.ColorScheme == c.Want.String() &&
		c.Result.ClassMutations == 1 &&
		c.Result.StyleMutations == 1
}

// VerifyScript evaluates the generated snippet against stored, missing,
// invalid and unavailable storage.
func VerifyScript(opts theme.ScriptOptions) []ScriptCheck {
	key := opts.StorageKey
	if key == "" {
		key = entity.DefaultStorageKey
	}
	fallback := opts.Fallback
	if !fallback.Valid() {
		fallback = entity.DefaultTheme
	}
	other := fallback.Opposite()

	cases := []struct {
		name string
		env  jsruntime.Environment
		want entity.ThemeMode
	}{
		{name: "empty storage", env: jsruntime.Environment{Storage: map[string]string{}}, want: fallback},
		{name: "stored " + other.String(), env: jsruntime.Environment{Storage: map[string]string{key: other.String()}}, want: other},
		{name: "stored " + fallback.String(), env: jsruntime.Environment{Storage: map[string]string{key: fallback.String()}}, want: fallback},
		{name: "invalid stored value", env: jsruntime.Environment{Storage: map[string]string{key: "sepia"}}, want: fallback},
		{name: "storage throws", env: jsruntime.Environment{StorageThrows: true}, want: fallback},
		{name: "storage unavailable", env: jsruntime.Environment{NoStorage: true}, want: fallback},
	}

	script := theme.Script(opts)
	checks := make([]ScriptCheck, 0, len(cases))
	for _, tc := range cases {
		res, err := jsruntime.Evaluate(script, tc.env)
		if err != nil {
			err = fmt.Errorf("%s: %w", tc.name, err)
		}
		checks = append(checks, ScriptCheck{Name: tc.name, Want: tc.want, Result: res, Err: err})
	}
	return checks
}
