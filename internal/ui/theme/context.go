package theme

import (
	"context"
	"errors"
)

// ErrNoProvider is the panic value of FromContext when no Manager was
// installed with WithManager.
var ErrNoProvider = errors.New("theme manager used outside of a theme provider")

type managerKey struct{}

// WithManager returns a context carrying m. Everything below it in the call
// tree can reach the manager through FromContext.
func WithManager(ctx context.Context, m *Manager) context.Context {
	return context.WithValue(ctx, managerKey{}, m)
}

// FromContext returns the Manager installed by WithManager.
// It panics with ErrNoProvider otherwise: a missing provider is a wiring bug.
func FromContext(ctx context.Context) *Manager {
	m, ok := ctx.Value(managerKey{}).(*Manager)
	if !ok || m == nil {
		panic(ErrNoProvider)
	}
	return m
}

// ManagerFromContext is the non-panicking variant of FromContext.
func ManagerFromContext(ctx context.Context) (*Manager, bool) {
	m, ok := ctx.Value(managerKey{}).(*Manager)
	return m, ok && m != nil
}
