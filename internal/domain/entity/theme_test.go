package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseThemeMode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ThemeMode
		wantErr bool
	}{
		{name: "dark", input: "dark", want: ThemeDark},
		{name: "light", input: "light", want: ThemeLight},
		{name: "empty", input: "", wantErr: true},
		{name: "unknown color", input: "blue", wantErr: true},
		{name: "wrong case", input: "Dark", wantErr: true},
		{name: "padded", input: " light", wantErr: true},
		{name: "json-ish", input: `{"theme":"dark"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseThemeMode(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTheme)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestThemeMode_Opposite(t *testing.T) {
	assert.Equal(t, ThemeLight, ThemeDark.Opposite())
	assert.Equal(t, ThemeDark, ThemeLight.Opposite())
	assert.Equal(t, DefaultTheme, ThemeMode("blue").Opposite())
	assert.Equal(t, ThemeDark, ThemeDark.Opposite().Opposite())
}

func TestResolveEffectiveTheme(t *testing.T) {
	tests := []struct {
		name         string
		stored       string
		system       ThemeMode
		systemKnown  bool
		enableSystem bool
		fallback     ThemeMode
		want         ThemeMode
		wantSource   ThemeSource
	}{
		{
			name:     "nothing stored, system disabled",
			fallback: ThemeDark,
			want:     ThemeDark, wantSource: ThemeSourceDefault,
		},
		{
			name:   "stored light beats system dark",
			stored: "light", system: ThemeDark, systemKnown: true, enableSystem: true,
			fallback: ThemeDark,
			want:     ThemeLight, wantSource: ThemeSourceStored,
		},
		{
			name:   "system used on first run",
			system: ThemeLight, systemKnown: true, enableSystem: true,
			fallback: ThemeDark,
			want:     ThemeLight, wantSource: ThemeSourceSystem,
		},
		{
			name:   "system ignored when disabled",
			system: ThemeLight, systemKnown: true, enableSystem: false,
			fallback: ThemeDark,
			want:     ThemeDark, wantSource: ThemeSourceDefault,
		},
		{
			name:   "unknown system falls back",
			system: "", systemKnown: false, enableSystem: true,
			fallback: ThemeLight,
			want:     ThemeLight, wantSource: ThemeSourceDefault,
		},
		{
			name:   "invalid stored treated as absent",
			stored: "blue", system: ThemeLight, systemKnown: true, enableSystem: true,
			fallback: ThemeDark,
			want:     ThemeLight, wantSource: ThemeSourceSystem,
		},
		{
			name:     "invalid fallback replaced by dark",
			fallback: ThemeMode("sepia"),
			want:     ThemeDark, wantSource: ThemeSourceDefault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, source := ResolveEffectiveTheme(tt.stored, tt.system, tt.systemKnown, tt.enableSystem, tt.fallback)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantSource, source)
		})
	}
}

func TestParseColorScheme(t *testing.T) {
	tests := []struct {
		input    string
		want     ColorScheme
		wantMode ThemeMode
		wantOk   bool
	}{
		{input: "prefer-dark", want: ColorSchemePreferDark, wantMode: ThemeDark, wantOk: true},
		{input: "DARK", want: ColorSchemePreferDark, wantMode: ThemeDark, wantOk: true},
		{input: "prefer-light", want: ColorSchemePreferLight, wantMode: ThemeLight, wantOk: true},
		{input: "light", want: ColorSchemePreferLight, wantMode: ThemeLight, wantOk: true},
		{input: "default", want: ColorSchemeDefault},
		{input: "", want: ColorSchemeDefault},
		{input: "sepia", want: ColorSchemeDefault},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseColorScheme(tt.input)
			assert.Equal(t, tt.want, got)
			mode, ok := got.ThemeMode()
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.wantMode, mode)
		})
	}
}
