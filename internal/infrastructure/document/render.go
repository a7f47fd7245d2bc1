package document

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/vybe/themesync/internal/application/port"
	"github.com/vybe/themesync/internal/logging"
)

const (
	// ScriptElementID marks the injected bootstrap script.
	ScriptElementID = "vybe-theme-bootstrap"
	// StyleElementID marks the injected theme stylesheet.
	StyleElementID = "vybe-theme-style"
)

// RenderOptions controls Render.
type RenderOptions struct {
	// Apply mutates the root marker, typically with the theme bootstrap.
	// Nil leaves the root untouched.
	Apply func(root port.DocumentRoot)
	// Script is inlined as the first element of <head>.
	Script string
	// ScriptNonce is set as the CSP nonce of the injected script.
	ScriptNonce string
	// Stylesheet is inlined right after the script.
	Stylesheet string
}

// Render parses an HTML document from r, applies the root marker and injects
// the bootstrap script and stylesheet at the top of <head>. Elements injected
// by a previous Render are replaced, so rendering twice is stable.
func Render(ctx context.Context, r io.Reader, w io.Writer, opts RenderOptions) error {
	log := logging.FromContext(ctx)

	doc, err := html.Parse(r)
	if err != nil {
		return fmt.Errorf("failed to parse html: %w", err)
	}

	root, err := NewHTMLRoot(doc)
	if err != nil {
		return err
	}
	if opts.Apply != nil {
		opts.Apply(root)
	}

	head := FindElement(doc, atom.Head)
	if head == nil {
		// html.Parse always synthesizes <head>; guard for hand-built trees.
		head = &html.Node{Type: html.ElementNode, Data: "head", DataAtom: atom.Head}
		root.Node().InsertBefore(head, root.Node().FirstChild)
	}

	removeByID(head, ScriptElementID)
	removeByID(head, StyleElementID)

	// Inserted in reverse so the script ends up first.
	if opts.Stylesheet != "" {
		style := newElement(atom.Style, StyleElementID, opts.Stylesheet)
		head.InsertBefore(style, head.FirstChild)
	}
	if opts.Script != "" {
		script := newElement(atom.Script, ScriptElementID, opts.Script)
		if opts.ScriptNonce != "" {
			script.Attr = append(script.Attr, html.Attribute{Key: "nonce", Val: opts.ScriptNonce})
		}
		head.InsertBefore(script, head.FirstChild)
	}

	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("failed to render html: %w", err)
	}

	log.Debug().
		Strs("classes", root.Classes()).
		Bool("script", opts.Script != "").
		Bool("stylesheet", opts.Stylesheet != "").
		Msg("document rendered")
	return nil
}

func newElement(a atom.Atom, id, text string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     a.String(),
		DataAtom: a,
		Attr:     []html.Attribute{{Key: "id", Val: id}},
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}

func removeByID(parent *html.Node, id string) {
	for c := parent.FirstChild; c != nil; {
		next := c.NextSibling
		if c.Type == html.ElementNode && getAttr(c, "id") == id {
			parent.RemoveChild(c)
		}
		c = next
	}
}
