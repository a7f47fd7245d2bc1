package document

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vybe/themesync/internal/application/port"
)

const page = `<!DOCTYPE html>
<html lang="en">
<head><title>Vybe</title><link rel="stylesheet" href="/app.css"></head>
<body><p>hello</p></body>
</html>`

func TestRender_InjectsScriptFirst(t *testing.T) {
	var out bytes.Buffer

	err := Render(context.Background(), strings.NewReader(page), &out, RenderOptions{
		Apply: func(root port.DocumentRoot) {
			root.AddClass("dark")
			root.SetStyleProperty("color-scheme", "dark")
		},
		Script:      "boot()",
		ScriptNonce: "abc123",
		Stylesheet:  ":root.dark{--bg:#000}",
	})
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, `<html lang="en" class="dark" style="color-scheme: dark">`)
	assert.Contains(t, got, `<head><script id="vybe-theme-bootstrap" nonce="abc123">boot()</script><style id="vybe-theme-style">:root.dark{--bg:#000}</style><title>`)

	scriptAt := strings.Index(got, "boot()")
	linkAt := strings.Index(got, `href="/app.css"`)
	assert.Less(t, scriptAt, linkAt, "bootstrap must run before external styles load")
}

func TestRender_IsStable(t *testing.T) {
	opts := RenderOptions{
		Apply:      func(root port.DocumentRoot) { root.AddClass("light") },
		Script:     "boot()",
		Stylesheet: "body{}",
	}

	var first, second bytes.Buffer
	require.NoError(t, Render(context.Background(), strings.NewReader(page), &first, opts))
	require.NoError(t, Render(context.Background(), bytes.NewReader(first.Bytes()), &second, opts))

	assert.Equal(t, first.String(), second.String())
	assert.Equal(t, 1, strings.Count(second.String(), ScriptElementID))
	assert.Equal(t, 1, strings.Count(second.String(), StyleElementID))
}

func TestRender_NothingToInject(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, Render(context.Background(), strings.NewReader("<p>bare</p>"), &out, RenderOptions{}))

	assert.Equal(t, "<html><head></head><body><p>bare</p></body></html>", out.String())
}
