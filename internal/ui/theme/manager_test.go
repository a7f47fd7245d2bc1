package theme

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vybe/themesync/internal/application/port"
	"github.com/vybe/themesync/internal/application/port/mocks"
	"github.com/vybe/themesync/internal/domain/entity"
	"github.com/vybe/themesync/internal/infrastructure/colorscheme"
	"github.com/vybe/themesync/internal/infrastructure/document"
	"github.com/vybe/themesync/internal/infrastructure/persistence/memory"
	"github.com/vybe/themesync/internal/logging"
)

// fakeSystem is a controllable OS preference signal.
type fakeSystem struct {
	mu        sync.Mutex
	pref      port.ColorSchemePreference
	callbacks map[int]func(port.ColorSchemePreference)
	nextID    int
}

func newFakeSystem(pref port.ColorSchemePreference) *fakeSystem {
	return &fakeSystem{pref: pref, callbacks: make(map[int]func(port.ColorSchemePreference))}
}

func systemPref(mode entity.ThemeMode) port.ColorSchemePreference {
	return port.ColorSchemePreference{PrefersDark: mode == entity.ThemeDark, Known: true, Source: "fake"}
}

func (f *fakeSystem) Resolve() port.ColorSchemePreference {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pref
}

func (f *fakeSystem) RegisterDetector(port.ColorSchemeDetector) {}

func (f *fakeSystem) Refresh() port.ColorSchemePreference { return f.Resolve() }

func (f *fakeSystem) OnChange(cb func(port.ColorSchemePreference)) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextID
	f.nextID++
	f.callbacks[id] = cb
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.callbacks, id)
	}
}

func (f *fakeSystem) emit(pref port.ColorSchemePreference) {
	f.mu.Lock()
	f.pref = pref
	cbs := make([]func(port.ColorSchemePreference), 0, len(f.callbacks))
	for _, cb := range f.callbacks {
		cbs = append(cbs, cb)
	}
	f.mu.Unlock()
	for _, cb := range cbs {
		cb(pref)
	}
}

func (f *fakeSystem) listeners() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.callbacks)
}

// failingStore reads fine and fails every write.
type failingStore struct {
	*memory.Store
}

func (failingStore) Set(context.Context, string, string) error {
	return errors.New("quota exceeded")
}

// assertSingleMarker checks the mutual exclusion of the root marker.
func assertSingleMarker(t *testing.T, root *document.Root, want entity.ThemeMode) {
	t.Helper()
	assert.Equal(t, []string{want.String()}, root.Classes())
	assert.Equal(t, want.String(), root.StyleProperty(ColorSchemeProperty))
}

func noSystemOptions() Options {
	opts := DefaultOptions()
	opts.EnableSystem = false
	return opts
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.Equal(t, entity.ThemeDark, opts.DefaultTheme)
	assert.Equal(t, "vybe-theme", opts.StorageKey)
	assert.True(t, opts.EnableSystem)
	assert.False(t, opts.FollowSystem)
}

func TestNewManager_NormalizesOptions(t *testing.T) {
	m := NewManager(context.Background(), nil, nil, nil, Options{DefaultTheme: "sepia"})

	assert.Equal(t, entity.ThemeDark, m.Options().DefaultTheme)
	assert.Equal(t, entity.DefaultStorageKey, m.Options().StorageKey)
}

func TestManager_DefaultConstruction(t *testing.T) {
	ctx := context.Background()
	root := document.NewRoot()
	m := NewManager(ctx, memory.NewStore(nil), root, nil, noSystemOptions())

	state := m.Mount(ctx)

	assert.Equal(t, entity.ThemeDark, state.Theme)
	assert.Equal(t, entity.ThemeSourceDefault, state.Source)
	assert.True(t, state.Mounted)
	assertSingleMarker(t, root, entity.ThemeDark)

	_, known := m.SystemTheme()
	assert.False(t, known)
}

func TestManager_MountRoundTrip(t *testing.T) {
	for _, mode := range entity.AllThemeModes() {
		t.Run(mode.String(), func(t *testing.T) {
			ctx := context.Background()
			store := memory.NewStore(nil)

			first := NewManager(ctx, store, document.NewRoot(), nil, noSystemOptions())
			first.Mount(ctx)
			require.NoError(t, first.SetTheme(ctx, mode))
			assert.Equal(t, mode, first.Theme())

			// Simulated reload: a new manager and root over the same store.
			root := document.NewRoot()
			reloaded := NewManager(ctx, store, root, nil, noSystemOptions())
			state := reloaded.Mount(ctx)

			assert.Equal(t, mode, state.Theme)
			assert.Equal(t, entity.ThemeSourceStored, state.Source)
			assertSingleMarker(t, root, mode)
		})
	}
}

func TestManager_InvalidStoredValuesUseDefault(t *testing.T) {
	for _, value := range []string{"blue", "", "DARK", " light", "light\n", "{\"theme\":\"dark\"}"} {
		t.Run(value, func(t *testing.T) {
			ctx := context.Background()
			root := document.NewRoot()
			opts := noSystemOptions()
			opts.DefaultTheme = entity.ThemeLight

			m := NewManager(ctx, memory.NewStore(map[string]string{"vybe-theme": value}), root, nil, opts)
			state := m.Mount(ctx)

			assert.Equal(t, entity.ThemeLight, state.Theme)
			assert.Equal(t, entity.ThemeSourceDefault, state.Source)
			assertSingleMarker(t, root, entity.ThemeLight)
		})
	}
}

func TestManager_StorageReadErrorUsesDefaultResolution(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewMockPreferenceStore(t)
	store.EXPECT().Get(mock.Anything, "vybe-theme").Return("", errors.New("storage disabled"))

	root := document.NewRoot()
	sys := newFakeSystem(systemPref(entity.ThemeLight))
	m := NewManager(ctx, store, root, sys, DefaultOptions())

	state := m.Mount(ctx)

	assert.Equal(t, entity.ThemeLight, state.Theme)
	assert.Equal(t, entity.ThemeSourceSystem, state.Source)
	assertSingleMarker(t, root, entity.ThemeLight)
}

func TestManager_FirstRunSystemReconciliation(t *testing.T) {
	ctx := context.Background()
	root := document.NewRoot()
	sys := newFakeSystem(systemPref(entity.ThemeLight))
	m := NewManager(ctx, memory.NewStore(nil), root, sys, DefaultOptions())

	state := m.Mount(ctx)

	assert.Equal(t, entity.ThemeLight, state.Theme)
	assert.Equal(t, entity.ThemeSourceSystem, state.Source)
	sysTheme, known := m.SystemTheme()
	assert.True(t, known)
	assert.Equal(t, entity.ThemeLight, sysTheme)
	assertSingleMarker(t, root, entity.ThemeLight)
}

func TestManager_UnknownSystemPreferenceUsesDefault(t *testing.T) {
	ctx := context.Background()
	sys := newFakeSystem(port.ColorSchemePreference{Source: "unknown"})
	m := NewManager(ctx, memory.NewStore(nil), document.NewRoot(), sys, DefaultOptions())

	state := m.Mount(ctx)

	assert.Equal(t, entity.ThemeDark, state.Theme)
	assert.Equal(t, entity.ThemeSourceDefault, state.Source)
	assert.False(t, state.SystemKnown)
}

func TestManager_SystemDisabledIgnoresSignal(t *testing.T) {
	ctx := context.Background()
	sys := newFakeSystem(systemPref(entity.ThemeLight))
	m := NewManager(ctx, memory.NewStore(nil), document.NewRoot(), sys, noSystemOptions())

	state := m.Mount(ctx)

	assert.Equal(t, entity.ThemeDark, state.Theme)
	assert.Zero(t, sys.listeners())
	_, known := m.SystemTheme()
	assert.False(t, known)
}

func TestManager_StoredValueBeatsSystem(t *testing.T) {
	ctx := context.Background()
	root := document.NewRoot()
	sys := newFakeSystem(systemPref(entity.ThemeDark))
	m := NewManager(ctx, memory.NewStore(map[string]string{"vybe-theme": "light"}), root, sys, DefaultOptions())

	state := m.Mount(ctx)

	assert.Equal(t, entity.ThemeLight, state.Theme)
	assert.Equal(t, entity.ThemeSourceStored, state.Source)
	assert.Equal(t, entity.ThemeDark, state.SystemTheme)
	assertSingleMarker(t, root, entity.ThemeLight)
}

func TestManager_SystemChangeDoesNotOverrideExplicitChoice(t *testing.T) {
	ctx := context.Background()
	root := document.NewRoot()
	sys := newFakeSystem(systemPref(entity.ThemeDark))
	opts := DefaultOptions()
	opts.FollowSystem = true
	m := NewManager(ctx, memory.NewStore(map[string]string{"vybe-theme": "dark"}), root, sys, opts)
	m.Mount(ctx)

	sys.emit(systemPref(entity.ThemeLight))

	assert.Equal(t, entity.ThemeDark, m.Theme())
	sysTheme, known := m.SystemTheme()
	assert.True(t, known)
	assert.Equal(t, entity.ThemeLight, sysTheme)
	assertSingleMarker(t, root, entity.ThemeDark)
}

func TestManager_SystemChangeWithoutFollowOnlyUpdatesSystemTheme(t *testing.T) {
	ctx := context.Background()
	root := document.NewRoot()
	sys := newFakeSystem(systemPref(entity.ThemeDark))
	m := NewManager(ctx, memory.NewStore(nil), root, sys, DefaultOptions())
	m.Mount(ctx)

	var states []State
	m.Subscribe(func(s State) { states = append(states, s) })

	sys.emit(systemPref(entity.ThemeLight))

	// No explicit choice exists, but live-follow is off: only systemTheme moves.
	assert.Equal(t, entity.ThemeDark, m.Theme())
	assertSingleMarker(t, root, entity.ThemeDark)
	require.Len(t, states, 1)
	assert.Equal(t, entity.ThemeLight, states[0].SystemTheme)
	assert.Equal(t, entity.ThemeDark, states[0].Theme)
}

func TestManager_FollowSystemUntilExplicitChoice(t *testing.T) {
	ctx := context.Background()
	root := document.NewRoot()
	store := memory.NewStore(nil)
	sys := newFakeSystem(systemPref(entity.ThemeDark))
	opts := DefaultOptions()
	opts.FollowSystem = true
	m := NewManager(ctx, store, root, sys, opts)
	m.Mount(ctx)

	sys.emit(systemPref(entity.ThemeLight))
	assert.Equal(t, entity.ThemeLight, m.Theme())
	assert.Equal(t, entity.ThemeSourceSystem, m.State().Source)
	assertSingleMarker(t, root, entity.ThemeLight)

	// Following never persists.
	stored, err := store.Get(ctx, "vybe-theme")
	require.NoError(t, err)
	assert.Empty(t, stored)

	require.NoError(t, m.SetTheme(ctx, entity.ThemeDark))
	sys.emit(systemPref(entity.ThemeLight))
	assert.Equal(t, entity.ThemeDark, m.Theme())
	assertSingleMarker(t, root, entity.ThemeDark)
}

func TestManager_FollowSystemLosingPreferenceFallsBackToDefault(t *testing.T) {
	ctx := context.Background()
	sys := newFakeSystem(systemPref(entity.ThemeLight))
	opts := DefaultOptions()
	opts.FollowSystem = true
	m := NewManager(ctx, memory.NewStore(nil), document.NewRoot(), sys, opts)
	m.Mount(ctx)
	require.Equal(t, entity.ThemeLight, m.Theme())

	sys.emit(port.ColorSchemePreference{Source: "unknown"})

	assert.Equal(t, entity.ThemeDark, m.Theme())
	assert.Equal(t, entity.ThemeSourceDefault, m.State().Source)
}

// staleResolveSystem delivers a newer preference through OnChange while
// Resolve is still returning the older one.
type staleResolveSystem struct {
	*fakeSystem
	newer port.ColorSchemePreference
	once  sync.Once
}

func (s *staleResolveSystem) Resolve() port.ColorSchemePreference {
	old := s.fakeSystem.Resolve()
	s.once.Do(func() { s.emit(s.newer) })
	return old
}

func TestManager_MountKeepsSystemChangeDeliveredDuringResolve(t *testing.T) {
	ctx := context.Background()
	root := document.NewRoot()
	sys := &staleResolveSystem{
		fakeSystem: newFakeSystem(systemPref(entity.ThemeLight)),
		newer:      systemPref(entity.ThemeDark),
	}
	m := NewManager(ctx, memory.NewStore(nil), root, sys, DefaultOptions())

	state := m.Mount(ctx)

	assert.Equal(t, entity.ThemeDark, state.SystemTheme)
	assert.True(t, state.SystemKnown)
	assert.Equal(t, entity.ThemeDark, state.Theme)
	assert.Equal(t, entity.ThemeSourceSystem, state.Source)
	assertSingleMarker(t, root, entity.ThemeDark)
}

func TestManager_SystemChangeBeforeMount(t *testing.T) {
	ctx := context.Background()
	m := NewManager(ctx, memory.NewStore(nil), document.NewRoot(), nil, DefaultOptions())

	m.handleSystemChange(systemPref(entity.ThemeLight))

	assert.False(t, m.Mounted())
	assert.Equal(t, entity.ThemeDark, m.Theme())
}

func TestManager_SetThemeBeforeMount(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(nil)
	root := document.NewRoot()
	m := NewManager(ctx, store, root, nil, DefaultOptions())

	err := m.SetTheme(ctx, entity.ThemeLight)
	require.ErrorIs(t, err, ErrNotMounted)

	_, err = m.ToggleTheme(ctx)
	require.ErrorIs(t, err, ErrNotMounted)

	assert.Equal(t, entity.ThemeDark, m.Theme())
	assert.Empty(t, root.Classes())
	stored, _ := store.Get(ctx, "vybe-theme")
	assert.Empty(t, stored)
}

func TestManager_SetThemeRejectsInvalidMode(t *testing.T) {
	ctx := context.Background()
	root := document.NewRoot()
	m := NewManager(ctx, memory.NewStore(nil), root, nil, DefaultOptions())
	m.Mount(ctx)

	err := m.SetTheme(ctx, "blue")

	require.ErrorIs(t, err, entity.ErrInvalidTheme)
	assertSingleMarker(t, root, entity.ThemeDark)
}

func TestManager_SetThemeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(nil)
	root := document.NewRoot()
	m := NewManager(ctx, store, root, nil, noSystemOptions())
	m.Mount(ctx)

	var notifications int
	m.Subscribe(func(State) { notifications++ })

	require.NoError(t, m.SetTheme(ctx, entity.ThemeDark))
	require.NoError(t, m.SetTheme(ctx, entity.ThemeDark))

	assert.Equal(t, entity.ThemeDark, m.Theme())
	assertSingleMarker(t, root, entity.ThemeDark)
	// The source moves from default to stored once; the repeat is silent.
	assert.Equal(t, 1, notifications)

	stored, err := store.Get(ctx, "vybe-theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", stored)
}

func TestManager_ToggleTwice(t *testing.T) {
	ctx := context.Background()
	root := document.NewRoot()
	m := NewManager(ctx, memory.NewStore(nil), root, nil, noSystemOptions())
	m.Mount(ctx)
	require.Equal(t, entity.ThemeDark, m.Theme())

	next, err := m.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.ThemeLight, next)
	assert.Equal(t, entity.ThemeLight, m.Theme())
	assertSingleMarker(t, root, entity.ThemeLight)

	next, err = m.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.ThemeDark, next)
	assertSingleMarker(t, root, entity.ThemeDark)
}

func TestManager_MutualExclusionAtEveryObservation(t *testing.T) {
	ctx := context.Background()
	root := document.NewRoot("app")
	m := NewManager(ctx, memory.NewStore(nil), root, nil, noSystemOptions())
	m.Mount(ctx)

	ops := []func(){
		func() { _ = m.SetTheme(ctx, entity.ThemeLight) },
		func() { _, _ = m.ToggleTheme(ctx) },
		func() { _ = m.SetTheme(ctx, entity.ThemeDark) },
		func() { _ = m.SetTheme(ctx, entity.ThemeDark) },
		func() { m.HandleStorageChange(ctx, "light") },
		func() { m.HandleStorageChange(ctx, "") },
		func() { _, _ = m.ToggleTheme(ctx) },
	}
	for i, op := range ops {
		op()
		dark, light := root.HasClass("dark"), root.HasClass("light")
		assert.True(t, dark != light, "step %d: classes %v", i, root.Classes())
		assert.True(t, root.HasClass("app"), "unrelated classes are preserved")
		assert.Equal(t, m.Theme().String(), root.StyleProperty(ColorSchemeProperty))
	}
}

func TestManager_WriteFailureKeepsInMemoryTheme(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.WarnLevel)
	ctx := logging.WithContext(context.Background(), logger)

	root := document.NewRoot()
	m := NewManager(ctx, failingStore{memory.NewStore(nil)}, root, nil, noSystemOptions())
	m.Mount(ctx)

	err := m.SetTheme(ctx, entity.ThemeLight)

	require.NoError(t, err)
	assert.Equal(t, entity.ThemeLight, m.Theme())
	assertSingleMarker(t, root, entity.ThemeLight)
	assert.Contains(t, buf.String(), "failed to persist theme preference")
	assert.Contains(t, buf.String(), `"level":"warn"`)
}

func TestManager_WritePanicKeepsInMemoryTheme(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.WarnLevel)
	ctx := logging.WithContext(context.Background(), logger)

	store := mocks.NewMockPreferenceStore(t)
	store.EXPECT().Get(mock.Anything, "vybe-theme").Return("", nil)
	store.EXPECT().Set(mock.Anything, "vybe-theme", "light").
		RunAndReturn(func(context.Context, string, string) error {
			panic("storage disabled")
		})

	root := document.NewRoot()
	m := NewManager(ctx, store, root, nil, noSystemOptions())
	m.Mount(ctx)

	var err error
	assert.NotPanics(t, func() {
		err = m.SetTheme(ctx, entity.ThemeLight)
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ThemeLight, m.Theme())
	assertSingleMarker(t, root, entity.ThemeLight)
	assert.Contains(t, buf.String(), "preference store panicked: storage disabled")
}

func TestManager_WriteFailureWithMockStore(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewMockPreferenceStore(t)
	store.EXPECT().Get(mock.Anything, "vybe-theme").Return("", nil)
	store.EXPECT().Set(mock.Anything, "vybe-theme", "light").Return(errors.New("read-only")).Once()

	root := document.NewRoot()
	m := NewManager(ctx, store, root, nil, noSystemOptions())
	m.Mount(ctx)

	next, err := m.ToggleTheme(ctx)

	require.NoError(t, err)
	assert.Equal(t, entity.ThemeLight, next)
	assertSingleMarker(t, root, entity.ThemeLight)
}

func TestManager_UpdateOrder(t *testing.T) {
	ctx := context.Background()
	var calls []string

	store := mocks.NewMockPreferenceStore(t)
	store.EXPECT().Get(mock.Anything, "vybe-theme").Return("dark", nil)
	store.EXPECT().Set(mock.Anything, "vybe-theme", "light").
		Run(func(context.Context, string, string) { calls = append(calls, "persist") }).
		Return(nil)

	root := mocks.NewMockDocumentRoot(t)
	root.EXPECT().RemoveClass(mock.Anything).Run(func(name string) { calls = append(calls, "remove:"+name) }).Return()
	root.EXPECT().AddClass(mock.Anything).Run(func(name string) { calls = append(calls, "add:"+name) }).Return()
	root.EXPECT().SetStyleProperty(ColorSchemeProperty, mock.Anything).
		Run(func(_, value string) { calls = append(calls, "style:"+value) }).Return()

	m := NewManager(ctx, store, root, nil, noSystemOptions())
	m.Mount(ctx)
	m.Subscribe(func(s State) { calls = append(calls, "notify:"+s.Theme.String()) })
	calls = nil

	require.NoError(t, m.SetTheme(ctx, entity.ThemeLight))

	assert.Equal(t, []string{"notify:light", "persist", "remove:dark", "add:light", "style:light"}, calls)
}

func TestManager_MountIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewMockPreferenceStore(t)
	store.EXPECT().Get(mock.Anything, "vybe-theme").Return("light", nil).Once()

	resolver := mocks.NewMockColorSchemeResolver(t)
	resolver.EXPECT().OnChange(mock.Anything).Return(func() {}).Once()
	resolver.EXPECT().Resolve().Return(systemPref(entity.ThemeDark)).Once()

	root := document.NewRoot()
	m := NewManager(ctx, store, root, resolver, DefaultOptions())

	first := m.Mount(ctx)
	second := m.Mount(ctx)

	assert.Equal(t, first, second)
	assertSingleMarker(t, root, entity.ThemeLight)
}

func TestManager_RenderGate(t *testing.T) {
	ctx := context.Background()
	m := NewManager(ctx, memory.NewStore(nil), document.NewRoot(), nil, DefaultOptions())

	var rendered int
	assert.False(t, m.Render(func() { rendered++ }))
	assert.Zero(t, rendered)

	m.Mount(ctx)

	assert.True(t, m.Render(func() { rendered++ }))
	assert.Equal(t, 1, rendered)
}

func TestManager_BootstrapThenMountAgree(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(map[string]string{"vybe-theme": "light"})
	root := document.NewRoot()
	opts := noSystemOptions()

	Bootstrap(ctx, store, root, opts.StorageKey, opts.DefaultTheme)
	assertSingleMarker(t, root, entity.ThemeLight)

	m := NewManager(ctx, store, root, nil, opts)
	m.Mount(ctx)

	assertSingleMarker(t, root, entity.ThemeLight)
}

func TestManager_MountReplacesConflictingBootstrapMarker(t *testing.T) {
	ctx := context.Background()
	// Bootstrap saw no preference and applied dark; system reconciliation then picks light.
	store := memory.NewStore(nil)
	root := document.NewRoot()
	Bootstrap(ctx, store, root, "vybe-theme", entity.ThemeDark)

	m := NewManager(ctx, store, root, newFakeSystem(systemPref(entity.ThemeLight)), DefaultOptions())
	m.Mount(ctx)

	assertSingleMarker(t, root, entity.ThemeLight)
}

func TestManager_SubscribeAndUnsubscribe(t *testing.T) {
	ctx := context.Background()
	m := NewManager(ctx, memory.NewStore(nil), document.NewRoot(), nil, noSystemOptions())

	var got []entity.ThemeMode
	unsubscribe := m.Subscribe(func(s State) { got = append(got, s.Theme) })

	m.Mount(ctx)
	_, _ = m.ToggleTheme(ctx)
	unsubscribe()
	unsubscribe()
	_, _ = m.ToggleTheme(ctx)

	assert.Equal(t, []entity.ThemeMode{entity.ThemeDark, entity.ThemeLight}, got)
}

func TestManager_SubscriberMayReadState(t *testing.T) {
	ctx := context.Background()
	m := NewManager(ctx, memory.NewStore(nil), document.NewRoot(), nil, noSystemOptions())
	m.Mount(ctx)

	var seen entity.ThemeMode
	m.Subscribe(func(State) { seen = m.Theme() })

	require.NoError(t, m.SetTheme(ctx, entity.ThemeLight))

	assert.Equal(t, entity.ThemeLight, seen)
}

func TestManager_HandleStorageChange(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewMockPreferenceStore(t)
	store.EXPECT().Get(mock.Anything, "vybe-theme").Return("", nil)
	// No Set expectation: external values are adopted without being written back.

	root := document.NewRoot()
	sys := newFakeSystem(systemPref(entity.ThemeDark))
	m := NewManager(ctx, store, root, sys, DefaultOptions())
	m.Mount(ctx)

	m.HandleStorageChange(ctx, "light")
	assert.Equal(t, entity.ThemeLight, m.Theme())
	assert.Equal(t, entity.ThemeSourceStored, m.State().Source)
	assertSingleMarker(t, root, entity.ThemeLight)

	m.HandleStorageChange(ctx, "purple")
	assert.Equal(t, entity.ThemeDark, m.Theme())
	assert.Equal(t, entity.ThemeSourceSystem, m.State().Source)
	assertSingleMarker(t, root, entity.ThemeDark)
}

func TestManager_HandleStorageChangeBeforeMount(t *testing.T) {
	ctx := context.Background()
	root := document.NewRoot()
	m := NewManager(ctx, memory.NewStore(nil), root, nil, DefaultOptions())

	m.HandleStorageChange(ctx, "light")

	assert.Equal(t, entity.ThemeDark, m.Theme())
	assert.Empty(t, root.Classes())
}

func TestManager_WatchStorage(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(nil)
	root := document.NewRoot()
	m := NewManager(ctx, store, root, nil, noSystemOptions())
	m.Mount(ctx)

	// Another process writes the key before each event.
	external := func(value string, onChange func(string)) {
		if value == "" {
			require.NoError(t, store.Delete(ctx, "vybe-theme"))
		} else {
			require.NoError(t, store.Set(ctx, "vybe-theme", value))
		}
		onChange(value)
	}

	watcher := mocks.NewMockPreferenceWatcher(t)
	watcher.EXPECT().Watch(mock.Anything, "vybe-theme", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, onChange func(string)) error {
			external("light", onChange)
			assert.Equal(t, entity.ThemeSourceStored, m.State().Source)
			external("", onChange)
			assert.Equal(t, entity.ThemeSourceDefault, m.State().Source)
			external("light", onChange)
			return nil
		})

	require.NoError(t, m.WatchStorage(ctx, watcher))

	assert.Equal(t, entity.ThemeLight, m.Theme())
	assertSingleMarker(t, root, entity.ThemeLight)
	assert.NoError(t, m.WatchStorage(ctx, nil))
}

func TestManager_WatchStorageIgnoresStaleOwnWrites(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(nil)
	root := document.NewRoot()
	m := NewManager(ctx, store, root, nil, noSystemOptions())
	m.Mount(ctx)

	var notified []entity.ThemeMode
	watcher := mocks.NewMockPreferenceWatcher(t)
	watcher.EXPECT().Watch(mock.Anything, "vybe-theme", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, onChange func(string)) error {
			require.NoError(t, m.SetTheme(ctx, entity.ThemeLight))
			require.NoError(t, m.SetTheme(ctx, entity.ThemeDark))
			unsub := m.Subscribe(func(s State) { notified = append(notified, s.Theme) })
			defer unsub()

			// The watcher read the first write and reports it late.
			onChange("light")
			onChange("dark")
			return nil
		})

	require.NoError(t, m.WatchStorage(ctx, watcher))

	assert.Equal(t, entity.ThemeDark, m.Theme())
	assert.Equal(t, entity.ThemeSourceStored, m.State().Source)
	assert.Empty(t, notified)
	assertSingleMarker(t, root, entity.ThemeDark)
}

func TestManager_WatchStorageReadFailureKeepsTheme(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewMockPreferenceStore(t)
	store.EXPECT().Get(mock.Anything, "vybe-theme").Return("light", nil).Once()
	store.EXPECT().Get(mock.Anything, "vybe-theme").Return("", errors.New("locked")).Once()

	root := document.NewRoot()
	m := NewManager(ctx, store, root, nil, noSystemOptions())
	m.Mount(ctx)

	watcher := mocks.NewMockPreferenceWatcher(t)
	watcher.EXPECT().Watch(mock.Anything, "vybe-theme", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, onChange func(string)) error {
			onChange("dark")
			return nil
		})

	require.NoError(t, m.WatchStorage(ctx, watcher))

	assert.Equal(t, entity.ThemeLight, m.Theme())
	assertSingleMarker(t, root, entity.ThemeLight)
}

func TestManager_CloseUnregistersSystemListener(t *testing.T) {
	ctx := context.Background()
	sys := newFakeSystem(systemPref(entity.ThemeDark))
	m := NewManager(ctx, memory.NewStore(nil), document.NewRoot(), sys, DefaultOptions())
	m.Mount(ctx)
	require.Equal(t, 1, sys.listeners())

	m.Close()
	m.Close()

	assert.Zero(t, sys.listeners())
}

func TestManager_WithResolverAndConfigOverride(t *testing.T) {
	ctx := context.Background()
	scheme := "prefer-light"
	resolver := colorscheme.NewResolver(colorscheme.NewConfigDetector(
		colorscheme.ConfigProviderFunc(func() string { return scheme }),
	))
	root := document.NewRoot()
	m := NewManager(ctx, memory.NewStore(nil), root, resolver, DefaultOptions())

	m.Mount(ctx)
	assert.Equal(t, entity.ThemeLight, m.Theme())

	scheme = "prefer-dark"
	resolver.Refresh()

	// The OS change is observed but does not move the active theme.
	sysTheme, known := m.SystemTheme()
	assert.True(t, known)
	assert.Equal(t, entity.ThemeDark, sysTheme)
	assert.Equal(t, entity.ThemeLight, m.Theme())
	assertSingleMarker(t, root, entity.ThemeLight)
}

func TestManager_ConcurrentUse(t *testing.T) {
	ctx := context.Background()
	root := document.NewRoot()
	sys := newFakeSystem(systemPref(entity.ThemeDark))
	m := NewManager(ctx, memory.NewStore(nil), root, sys, DefaultOptions())
	m.Mount(ctx)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			_, _ = m.ToggleTheme(ctx)
		}()
		go func(i int) {
			defer wg.Done()
			sys.emit(systemPref(entity.ThemeModeFromDark(i%2 == 0)))
		}(i)
		go func() {
			defer wg.Done()
			unsubscribe := m.Subscribe(func(State) {})
			_ = m.State()
			unsubscribe()
		}()
	}
	wg.Wait()

	assertSingleMarker(t, root, m.Theme())
}
