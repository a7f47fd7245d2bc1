// Package memory provides a process-local preference store.
package memory

import (
	"context"
	"sync"

	"github.com/vybe/themesync/internal/application/port"
)

// Store keeps preferences in a map. Nothing survives the process.
type Store struct {
	mu     sync.RWMutex
	values map[string]string
}

var _ port.PreferenceStore = (*Store)(nil)

// NewStore returns an empty store, optionally seeded with values.
func NewStore(seed map[string]string) *Store {
	values := make(map[string]string, len(seed))
	for k, v := range seed {
		values[k] = v
	}
	return &Store{values: values}
}

// Get implements port.PreferenceStore.
func (s *Store) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key], nil
}

// Set implements port.PreferenceStore.
func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Delete implements port.PreferenceStore.
func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
