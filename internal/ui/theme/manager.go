// Package theme owns the active dark/light theme: the pre-render bootstrap,
// the state manager, and the stylesheet generated from the palettes.
package theme

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/vybe/themesync/internal/application/port"
	"github.com/vybe/themesync/internal/domain/entity"
	"github.com/vybe/themesync/internal/logging"
)

// ErrNotMounted is returned by mutations issued before Mount.
var ErrNotMounted = errors.New("theme manager is not mounted")

// Options configures a Manager.
type Options struct {
	// DefaultTheme applies when neither a stored nor a system preference resolves.
	DefaultTheme entity.ThemeMode
	// StorageKey is the key the preference is persisted under.
	StorageKey string
	// EnableSystem reconciles with the OS preference at mount time and keeps
	// SystemTheme up to date.
	EnableSystem bool
	// FollowSystem lets live OS changes move the active theme, but only while
	// no explicit preference exists in this session.
	FollowSystem bool
}

// DefaultOptions returns dark, "vybe-theme", system reconciliation on and
// live-follow off.
func DefaultOptions() Options {
	return Options{
		DefaultTheme: entity.DefaultTheme,
		StorageKey:   entity.DefaultStorageKey,
		EnableSystem: true,
	}
}

// State is a snapshot of the manager.
type State struct {
	Theme       entity.ThemeMode
	Source      entity.ThemeSource
	SystemTheme entity.ThemeMode
	SystemKnown bool
	Mounted     bool
}

// Manager is the single source of truth for the active theme.
// It is safe for concurrent use. Subscribers are called outside of locks.
type Manager struct {
	store  port.PreferenceStore
	root   port.DocumentRoot
	system port.ColorSchemeResolver
	opts   Options
	log    *zerolog.Logger

	mu          sync.RWMutex
	theme       entity.ThemeMode
	source      entity.ThemeSource
	systemTheme entity.ThemeMode
	systemKnown bool
	mounted     bool
	// explicit is set once a stored or user-chosen preference exists.
	explicit bool
	// systemSeq counts system change callbacks.
	systemSeq uint64
	// localGen counts SetTheme calls; persistedGen is the last one written.
	localGen uint64

	subMu       sync.Mutex
	subscribers map[uint64]func(State)
	nextSubID   uint64

	// mountMu serializes Mount and Close.
	mountMu          sync.Mutex
	unregisterSystem func()

	// syncMu serializes writes to the store and the root so the last
	// writer always reflects the latest in-memory theme.
	syncMu       sync.Mutex
	persistedGen uint64
}

// NewManager creates an unmounted manager. system may be nil when no OS
// signal is available. Invalid options are replaced by their defaults.
func NewManager(
	ctx context.Context,
	store port.PreferenceStore,
	root port.DocumentRoot,
	system port.ColorSchemeResolver,
	opts Options,
) *Manager {
	log := logging.FromContext(ctx)

	if !opts.DefaultTheme.Valid() {
		if opts.DefaultTheme != "" {
			log.Warn().Str("default_theme", string(opts.DefaultTheme)).Msg("invalid default theme, using dark")
		}
		opts.DefaultTheme = entity.DefaultTheme
	}
	if opts.StorageKey == "" {
		opts.StorageKey = entity.DefaultStorageKey
	}

	return &Manager{
		store:       store,
		root:        root,
		system:      system,
		opts:        opts,
		log:         log,
		theme:       opts.DefaultTheme,
		source:      entity.ThemeSourceDefault,
		subscribers: make(map[uint64]func(State)),
	}
}

// Options returns the normalized options.
func (m *Manager) Options() Options {
	return m.opts
}

// Mount runs the initialization algorithm once and returns the resulting
// state. Later calls return the current state without side effects.
func (m *Manager) Mount(ctx context.Context) State {
	m.mountMu.Lock()
	defer m.mountMu.Unlock()

	if m.Mounted() {
		return m.State()
	}

	log := logging.FromContext(ctx)
	m.log = log

	m.mu.RLock()
	seq := m.systemSeq
	m.mu.RUnlock()

	var pref port.ColorSchemePreference
	if m.opts.EnableSystem && m.system != nil {
		m.unregisterSystem = m.system.OnChange(m.handleSystemChange)
		pref = m.system.Resolve()
	}
	sysTheme, sysKnown := pref.ThemeMode()

	stored, err := readPreference(ctx, m.store, m.opts.StorageKey)
	if err != nil {
		log.Warn().Err(err).Str("key", m.opts.StorageKey).Msg("failed to read theme preference")
		stored = ""
	} else if stored != "" {
		if _, parseErr := entity.ParseThemeMode(stored); parseErr != nil {
			log.Debug().Str("value", stored).Msg("discarding invalid stored theme")
		}
	}

	m.mu.Lock()
	// A change delivered between OnChange and Resolve is newer than pref.
	if m.systemSeq == seq {
		m.systemTheme = sysTheme
		m.systemKnown = sysKnown
	}
	mode, source := entity.ResolveEffectiveTheme(stored, m.systemTheme, m.systemKnown, m.opts.EnableSystem, m.opts.DefaultTheme)
	m.theme = mode
	m.source = source
	m.explicit = source == entity.ThemeSourceStored
	m.mounted = true
	state := m.stateLocked()
	m.mu.Unlock()

	m.applyRoot()
	m.notify(state)

	log.Debug().
		Str("theme", mode.String()).
		Str("source", string(source)).
		Str("system_theme", state.SystemTheme.String()).
		Bool("system_known", state.SystemKnown).
		Msg("theme manager mounted")

	return state
}

// Mounted reports whether Mount has completed.
func (m *Manager) Mounted() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.mounted
}

// Render runs fn only once the manager is mounted and reports whether it ran.
// Children rendered before mount would contradict the bootstrap marker.
func (m *Manager) Render(fn func()) bool {
	if !m.Mounted() {
		return false
	}
	fn()
	return true
}

// Theme returns the effective theme. Before mount it is the configured default.
func (m *Manager) Theme() entity.ThemeMode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.theme
}

// SystemTheme returns the last OS preference and whether it is known.
// It is never known when system reconciliation is disabled.
func (m *Manager) SystemTheme() (entity.ThemeMode, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.systemTheme, m.systemKnown
}

// State returns a snapshot of the manager.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.stateLocked()
}

func (m *Manager) stateLocked() State {
	return State{
		Theme:       m.theme,
		Source:      m.source,
		SystemTheme: m.systemTheme,
		SystemKnown: m.systemKnown,
		Mounted:     m.mounted,
	}
}

// SetTheme makes mode the explicit theme. Subscribers are notified, the
// value is persisted and the root marker is replaced. A failed write is
// logged and does not revert the in-memory theme.
func (m *Manager) SetTheme(ctx context.Context, mode entity.ThemeMode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %q", entity.ErrInvalidTheme, string(mode))
	}

	m.mu.Lock()
	if !m.mounted {
		m.mu.Unlock()
		return ErrNotMounted
	}
	changed := m.theme != mode || m.source != entity.ThemeSourceStored
	m.theme = mode
	m.source = entity.ThemeSourceStored
	m.explicit = true
	m.localGen++
	state := m.stateLocked()
	m.mu.Unlock()

	if changed {
		m.notify(state)
	}

	m.persist(ctx)
	m.applyRoot()

	logging.FromContext(ctx).Debug().Str("theme", mode.String()).Msg("theme set")
	return nil
}

// ToggleTheme switches to the opposite of the current theme and returns it.
func (m *Manager) ToggleTheme(ctx context.Context) (entity.ThemeMode, error) {
	next := m.Theme().Opposite()
	if err := m.SetTheme(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}

// Subscribe registers fn for every state change and returns its
// unsubscribe function. fn must not block.
func (m *Manager) Subscribe(fn func(State)) func() {
	m.subMu.Lock()
	id := m.nextSubID
	m.nextSubID++
	m.subscribers[id] = fn
	m.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.subMu.Lock()
			delete(m.subscribers, id)
			m.subMu.Unlock()
		})
	}
}

// HandleStorageChange adopts a value written to the storage key by another
// process. A valid value becomes the explicit theme without being written
// back. An empty or invalid value drops the explicit preference and the
// theme falls back to system or default resolution.
func (m *Manager) HandleStorageChange(ctx context.Context, value string) {
	if prev, state, changed := m.adopt(value); changed {
		m.announceStorageChange(ctx, value, prev, state)
	}
}

// WatchStorage re-reads the storage key on every watcher event until ctx is
// done. Events carry no trusted value: they may be stale or echo this
// manager's own writes, so the store decides.
func (m *Manager) WatchStorage(ctx context.Context, watcher port.PreferenceWatcher) error {
	if watcher == nil {
		return nil
	}
	return watcher.Watch(ctx, m.opts.StorageKey, func(value string) {
		if m.store == nil {
			m.HandleStorageChange(ctx, value)
			return
		}
		m.syncFromStore(ctx)
	})
}

// syncFromStore adopts the current stored value. It does nothing while a
// local SetTheme has not been persisted yet, since that write replaces
// whatever the store holds now.
func (m *Manager) syncFromStore(ctx context.Context) {
	m.syncMu.Lock()

	m.mu.RLock()
	pending := m.localGen != m.persistedGen
	m.mu.RUnlock()
	if pending {
		m.syncMu.Unlock()
		return
	}

	value, err := readPreference(ctx, m.store, m.opts.StorageKey)
	if err != nil {
		m.syncMu.Unlock()
		logging.FromContext(ctx).Warn().Err(err).Str("key", m.opts.StorageKey).Msg("failed to re-read theme preference")
		return
	}
	prev, state, changed := m.adopt(value)
	m.syncMu.Unlock()

	if changed {
		m.announceStorageChange(ctx, value, prev, state)
	}
}

func (m *Manager) adopt(value string) (prev, state State, changed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.mounted {
		return State{}, State{}, false
	}
	prev = m.stateLocked()
	m.theme, m.source = entity.ResolveEffectiveTheme(value, m.systemTheme, m.systemKnown, m.opts.EnableSystem, m.opts.DefaultTheme)
	m.explicit = m.source == entity.ThemeSourceStored
	state = m.stateLocked()
	return prev, state, state != prev
}

func (m *Manager) announceStorageChange(ctx context.Context, value string, prev, state State) {
	logging.FromContext(ctx).Debug().
		Str("value", value).
		Str("theme", state.Theme.String()).
		Str("source", string(state.Source)).
		Msg("theme preference changed externally")

	m.notify(state)
	if state.Theme != prev.Theme {
		m.applyRoot()
	}
}

// Close detaches from the system preference signal.
func (m *Manager) Close() {
	m.mountMu.Lock()
	defer m.mountMu.Unlock()

	if m.unregisterSystem != nil {
		m.unregisterSystem()
		m.unregisterSystem = nil
	}
}

// handleSystemChange records the new OS preference. The active theme only
// moves with it under FollowSystem while nothing explicit has been chosen.
func (m *Manager) handleSystemChange(pref port.ColorSchemePreference) {
	sysTheme, sysKnown := pref.ThemeMode()

	m.mu.Lock()
	prev := m.stateLocked()
	m.systemSeq++
	m.systemTheme = sysTheme
	m.systemKnown = sysKnown
	follow := m.mounted && m.opts.FollowSystem && !m.explicit
	if follow {
		m.theme, m.source = entity.ResolveEffectiveTheme("", sysTheme, sysKnown, true, m.opts.DefaultTheme)
	}
	state := m.stateLocked()
	m.mu.Unlock()

	if state == prev {
		return
	}

	m.log.Debug().
		Str("system_theme", sysTheme.String()).
		Bool("system_known", sysKnown).
		Bool("followed", follow && state.Theme != prev.Theme).
		Str("source", pref.Source).
		Msg("system color scheme changed")

	m.notify(state)
	if state.Theme != prev.Theme {
		m.applyRoot()
	}
}

func (m *Manager) persist(ctx context.Context) {
	m.syncMu.Lock()
	defer m.syncMu.Unlock()

	m.mu.RLock()
	value, gen := m.theme.String(), m.localGen
	m.mu.RUnlock()
	m.persistedGen = gen

	if m.store == nil {
		return
	}
	if err := writePreference(ctx, m.store, m.opts.StorageKey, value); err != nil {
		logging.FromContext(ctx).Warn().
			Err(err).
			Str("key", m.opts.StorageKey).
			Str("theme", value).
			Msg("failed to persist theme preference")
	}
}

// applyRoot replaces the root marker: the opposite class is removed before
// the current one is added.
func (m *Manager) applyRoot() {
	if m.root == nil {
		return
	}

	m.syncMu.Lock()
	defer m.syncMu.Unlock()

	mode := m.Theme()
	m.root.RemoveClass(mode.Opposite().String())
	m.root.AddClass(mode.String())
	m.root.SetStyleProperty(ColorSchemeProperty, mode.String())
}

func (m *Manager) notify(state State) {
	m.subMu.Lock()
	subs := make([]func(State), 0, len(m.subscribers))
	for _, fn := range m.subscribers {
		subs = append(subs, fn)
	}
	m.subMu.Unlock()

	for _, fn := range subs {
		fn(state)
	}
}
