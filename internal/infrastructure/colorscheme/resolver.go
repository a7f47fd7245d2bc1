package colorscheme

import (
	"sort"
	"sync"

	"github.com/vybe/themesync/internal/application/port"
)

// sourceUnknown indicates no detector provided the preference.
const sourceUnknown = "unknown"

// callbackWrapper wraps a callback function to enable pointer comparison for removal.
type callbackWrapper struct {
	fn func(port.ColorSchemePreference)
}

// Resolver implements port.ColorSchemeResolver.
// It queries detectors by priority and reports an unknown preference when
// none of them succeeds.
type Resolver struct {
	mu        sync.RWMutex
	detectors []port.ColorSchemeDetector
	current   port.ColorSchemePreference
	sampled   bool
	callbacks []*callbackWrapper
}

// NewResolver creates a new color scheme resolver with the given detectors.
func NewResolver(detectors ...port.ColorSchemeDetector) *Resolver {
	r := &Resolver{
		detectors: make([]port.ColorSchemeDetector, 0, len(detectors)),
		current:   port.ColorSchemePreference{Source: sourceUnknown},
	}
	r.detectors = append(r.detectors, detectors...)
	return r
}

// Resolve implements port.ColorSchemeResolver.
// The first call samples the detectors; later calls return the cached sample
// until Refresh is called.
func (r *Resolver) Resolve() port.ColorSchemePreference {
	r.mu.RLock()
	if r.sampled {
		defer r.mu.RUnlock()
		return r.current
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.sampled {
		r.current = r.detectLocked()
		r.sampled = true
	}
	return r.current
}

// detectLocked performs the actual detection. Caller must hold the lock.
func (r *Resolver) detectLocked() port.ColorSchemePreference {
	sorted := make([]port.ColorSchemeDetector, len(r.detectors))
	copy(sorted, r.detectors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority() > sorted[j].Priority()
	})

	for _, detector := range sorted {
		if !detector.Available() {
			continue
		}
		if prefersDark, ok := detector.Detect(); ok {
			return port.ColorSchemePreference{
				PrefersDark: prefersDark,
				Known:       true,
				Source:      detector.Name(),
			}
		}
	}

	return port.ColorSchemePreference{Source: sourceUnknown}
}

// RegisterDetector implements port.ColorSchemeResolver.
func (r *Resolver) RegisterDetector(detector port.ColorSchemeDetector) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.detectors = append(r.detectors, detector)
}

// Refresh implements port.ColorSchemeResolver.
func (r *Resolver) Refresh() port.ColorSchemePreference {
	r.mu.Lock()

	newPref := r.detectLocked()
	changed := r.sampled && changedPreference(r.current, newPref)
	r.current = newPref
	r.sampled = true

	if !changed {
		r.mu.Unlock()
		return newPref
	}

	// Copy callbacks to avoid holding lock during callback invocation
	callbacks := make([]*callbackWrapper, len(r.callbacks))
	copy(callbacks, r.callbacks)
	r.mu.Unlock()

	for _, cb := range callbacks {
		cb.fn(newPref)
	}
	return newPref
}

func changedPreference(old, next port.ColorSchemePreference) bool {
	if old.Known != next.Known {
		return true
	}
	return next.Known && old.PrefersDark != next.PrefersDark
}

// OnChange implements port.ColorSchemeResolver.
func (r *Resolver) OnChange(callback func(port.ColorSchemePreference)) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	wrapper := &callbackWrapper{fn: callback}
	r.callbacks = append(r.callbacks, wrapper)

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()

		for i, cb := range r.callbacks {
			if cb == wrapper {
				r.callbacks = append(r.callbacks[:i], r.callbacks[i+1:]...)
				return
			}
		}
	}
}

var _ port.ColorSchemeResolver = (*Resolver)(nil)
