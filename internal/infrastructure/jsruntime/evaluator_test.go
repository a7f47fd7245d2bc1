package jsruntime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_ClassListAndStyle(t *testing.T) {
	res, err := Evaluate(`
		var r = document.documentElement;
		r.classList.add("dark");
		r.classList.add("dark");
		r.classList.remove("light");
		r.style.colorScheme = "dark";
	`, Environment{Classes: []string{"light"}})

	require.NoError(t, err)
	assert.Equal(t, []string{"dark"}, res.Classes)
	assert.Equal(t, "dark", res.ColorScheme)
	assert.Equal(t, 3, res.ClassMutations)
	assert.Equal(t, 1, res.StyleMutations)
}

func TestEvaluate_Storage(t *testing.T) {
	script := `
		var v = window.localStorage.getItem("k");
		document.documentElement.classList.add(v === null ? "none" : v);
	`

	tests := []struct {
		name    string
		env     Environment
		want    []string
		wantErr bool
	}{
		{name: "present", env: Environment{Storage: map[string]string{"k": "light"}}, want: []string{"light"}},
		{name: "absent", env: Environment{}, want: []string{"none"}},
		{name: "throws", env: Environment{StorageThrows: true}, wantErr: true},
		{name: "undefined", env: Environment{NoStorage: true}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Evaluate(script, tt.env)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Classes)
		})
	}
}

func TestEvaluate_ThrowingStorageIsCatchable(t *testing.T) {
	res, err := Evaluate(`
		var t = "dark";
		try { t = localStorage.getItem("k") || t; } catch (e) { t = "caught"; }
		document.documentElement.classList.add(t);
	`, Environment{StorageThrows: true})

	require.NoError(t, err)
	assert.Equal(t, []string{"caught"}, res.Classes)
}

func TestEvaluate_Timeout(t *testing.T) {
	_, err := Evaluate(`for (;;) {}`, Environment{Timeout: 50 * time.Millisecond})

	require.ErrorIs(t, err, ErrTimeout)
}

func TestEvaluate_SyntaxError(t *testing.T) {
	_, err := Evaluate(`function (`, Environment{})

	require.Error(t, err)
}
