// Package document implements port.DocumentRoot for an in-memory element and
// for the <html> element of a parsed HTML document.
package document

import (
	"slices"
	"strings"
	"sync"

	"github.com/vybe/themesync/internal/application/port"
)

// Root is an in-memory document root: an ordered class list and an ordered
// set of inline style properties. It is safe for concurrent use.
type Root struct {
	mu         sync.RWMutex
	classes    []string
	styleOrder []string
	style      map[string]string
}

var _ port.DocumentRoot = (*Root)(nil)

// NewRoot returns a root holding the given classes.
func NewRoot(classes ...string) *Root {
	r := &Root{style: make(map[string]string)}
	for _, c := range classes {
		r.AddClass(c)
	}
	return r
}

// AddClass adds name unless it is already present, like classList.add.
func (r *Root) AddClass(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if !slices.Contains(r.classes, name) {
		r.classes = append(r.classes, name)
	}
}

// RemoveClass removes name if present.
func (r *Root) RemoveClass(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.classes = slices.DeleteFunc(r.classes, func(c string) bool { return c == name })
}

// SetStyleProperty sets an inline style property. An empty value removes it.
func (r *Root) SetStyleProperty(name, value string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if value == "" {
		delete(r.style, name)
		r.styleOrder = slices.DeleteFunc(r.styleOrder, func(n string) bool { return n == name })
		return
	}
	if _, ok := r.style[name]; !ok {
		r.styleOrder = append(r.styleOrder, name)
	}
	r.style[name] = value
}

// Classes returns a copy of the class list in insertion order.
func (r *Root) Classes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.classes)
}

// HasClass reports whether name is present.
func (r *Root) HasClass(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Contains(r.classes, name)
}

// StyleProperty returns the inline value of name, or "".
func (r *Root) StyleProperty(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.style[name]
}

// ClassAttr renders the class list as an HTML class attribute value.
func (r *Root) ClassAttr() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return strings.Join(r.classes, " ")
}

// StyleAttr renders the inline style as an HTML style attribute value.
func (r *Root) StyleAttr() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return formatStyle(r.styleOrder, r.style)
}

func formatStyle(order []string, values map[string]string) string {
	parts := make([]string, 0, len(order))
	for _, name := range order {
		parts = append(parts, name+": "+values[name])
	}
	return strings.Join(parts, "; ")
}

// parseStyle splits an inline style attribute into ordered declarations.
// Values containing ';' (data URLs and the like) are not supported.
func parseStyle(attr string) ([]string, map[string]string) {
	values := make(map[string]string)
	var order []string
	for _, decl := range strings.Split(attr, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if name == "" || value == "" {
			continue
		}
		if _, seen := values[name]; !seen {
			order = append(order, name)
		}
		values[name] = value
	}
	return order, values
}
