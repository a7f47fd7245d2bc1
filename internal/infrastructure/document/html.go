package document

import (
	"errors"
	"slices"
	"strings"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/vybe/themesync/internal/application/port"
)

// ErrNoRootElement is returned when a document has no <html> element.
var ErrNoRootElement = errors.New("document has no html element")

// HTMLRoot adapts the <html> element of a parsed document to
// port.DocumentRoot. Mutations are written straight into the node's
// class and style attributes.
type HTMLRoot struct {
	mu   sync.Mutex
	node *html.Node
}

var _ port.DocumentRoot = (*HTMLRoot)(nil)

// NewHTMLRoot finds the <html> element in doc.
func NewHTMLRoot(doc *html.Node) (*HTMLRoot, error) {
	node := FindElement(doc, atom.Html)
	if node == nil {
		return nil, ErrNoRootElement
	}
	return &HTMLRoot{node: node}, nil
}

// Node returns the underlying <html> element.
func (r *HTMLRoot) Node() *html.Node {
	return r.node
}

// AddClass implements port.DocumentRoot.
func (r *HTMLRoot) AddClass(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	classes := strings.Fields(getAttr(r.node, "class"))
	if slices.Contains(classes, name) {
		return
	}
	setAttr(r.node, "class", strings.Join(append(classes, name), " "))
}

// RemoveClass implements port.DocumentRoot.
func (r *HTMLRoot) RemoveClass(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	classes := strings.Fields(getAttr(r.node, "class"))
	kept := slices.DeleteFunc(classes, func(c string) bool { return c == name })
	if len(kept) == 0 {
		removeAttr(r.node, "class")
		return
	}
	setAttr(r.node, "class", strings.Join(kept, " "))
}

// SetStyleProperty implements port.DocumentRoot.
func (r *HTMLRoot) SetStyleProperty(name, value string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	order, values := parseStyle(getAttr(r.node, "style"))
	if value == "" {
		delete(values, name)
		order = slices.DeleteFunc(order, func(n string) bool { return n == name })
	} else {
		if _, ok := values[name]; !ok {
			order = append(order, name)
		}
		values[name] = value
	}

	if len(order) == 0 {
		removeAttr(r.node, "style")
		return
	}
	setAttr(r.node, "style", formatStyle(order, values))
}

// Classes returns the current class list.
func (r *HTMLRoot) Classes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return strings.Fields(getAttr(r.node, "class"))
}

// StyleProperty returns the inline value of name, or "".
func (r *HTMLRoot) StyleProperty(name string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, values := parseStyle(getAttr(r.node, "style"))
	return values[name]
}

// FindElement returns the first element of type a in depth-first order.
func FindElement(n *html.Node, a atom.Atom) *html.Node {
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := FindElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func removeAttr(n *html.Node, key string) {
	n.Attr = slices.DeleteFunc(n.Attr, func(a html.Attribute) bool {
		return a.Namespace == "" && a.Key == key
	})
}
