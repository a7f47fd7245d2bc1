package colorscheme

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/vybe/themesync/internal/application/port"
)

func TestWatch_NotifiesOnChangeAndStops(t *testing.T) {
	defer goleak.VerifyNone(t)

	detector := &mockDetector{name: "test", priority: 50, available: true, prefersDark: false, detectOk: true}
	resolver := NewResolver(detector)
	resolver.Resolve()

	var changes atomic.Int32
	resolver.OnChange(func(port.ColorSchemePreference) { changes.Add(1) })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Watch(ctx, resolver, 5*time.Millisecond) }()

	detector.set(true, true)
	require.Eventually(t, func() bool { return changes.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.True(t, resolver.Resolve().PrefersDark)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Watch did not stop after cancel")
	}
}
