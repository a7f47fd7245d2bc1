package theme

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/vybe/themesync/internal/domain/entity"
)

// ScriptOptions configures the browser bootstrap snippet.
type ScriptOptions struct {
	StorageKey string
	Fallback   entity.ThemeMode
	// Nonce is written as the CSP nonce attribute of the script tag when set.
	Nonce string
}

// ScriptOptionsFrom derives script options from manager options so the
// snippet and the manager agree on key and fallback.
func ScriptOptionsFrom(opts Options) ScriptOptions {
	return ScriptOptions{
		StorageKey: opts.StorageKey,
		Fallback:   opts.DefaultTheme,
	}
}

func (o ScriptOptions) normalized() ScriptOptions {
	if o.StorageKey == "" {
		o.StorageKey = entity.DefaultStorageKey
	}
	if !o.Fallback.Valid() {
		o.Fallback = entity.DefaultTheme
	}
	return o
}

const scriptTemplate = `(function(){var k=%s,t=%s;try{var v=window.localStorage.getItem(k);if(v===%s||v===%s){t=v}}catch(e){}var r=document.documentElement;r.classList.add(t);r.style.colorScheme=t})();`

// Script returns the inline JavaScript that mirrors Bootstrap in a browser.
// It must be placed before any stylesheet-dependent markup.
func Script(opts ScriptOptions) string {
	opts = opts.normalized()
	return fmt.Sprintf(scriptTemplate,
		jsString(opts.StorageKey),
		jsString(opts.Fallback.String()),
		jsString(entity.ThemeDark.String()),
		jsString(entity.ThemeLight.String()),
	)
}

// ScriptTag wraps Script in a script element.
func ScriptTag(opts ScriptOptions) string {
	var sb strings.Builder
	sb.WriteString("<script")
	if opts.Nonce != "" {
		sb.WriteString(` nonce="`)
		sb.WriteString(html.EscapeString(opts.Nonce))
		sb.WriteString(`"`)
	}
	sb.WriteString(">")
	sb.WriteString(Script(opts))
	sb.WriteString("</script>")
	return sb.String()
}

// ScriptHash returns the CSP source expression ('sha256-...') allowing the
// inline script without a nonce.
func ScriptHash(opts ScriptOptions) string {
	sum := sha256.Sum256([]byte(Script(opts)))
	return "sha256-" + base64.StdEncoding.EncodeToString(sum[:])
}

// jsString quotes s as a JavaScript string literal. The JSON encoder escapes
// <, > and & as well as U+2028/U+2029, so the result is safe inside a script
// element.
func jsString(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return `""`
	}
	return string(b)
}
