package sqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vybe/themesync/internal/infrastructure/persistence/sqlite"
	"github.com/vybe/themesync/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromEnv()
	return logging.WithContext(context.Background(), logger)
}

func newRepo(t *testing.T, dbPath string) (sqlite.PreferenceRepository, *sqlite.LazyDB) {
	t.Helper()
	lazy := sqlite.NewLazyDB(dbPath)
	t.Cleanup(func() { _ = lazy.Close() })
	return sqlite.NewPreferenceRepository(lazy, 10*time.Millisecond), lazy
}

func TestPreferenceRepo_GetMissingKey(t *testing.T) {
	ctx := testCtx()
	repo, _ := newRepo(t, filepath.Join(t.TempDir(), "prefs.db"))

	value, err := repo.Get(ctx, "vybe-theme")

	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestPreferenceRepo_SetGetOverwriteDelete(t *testing.T) {
	ctx := testCtx()
	repo, _ := newRepo(t, filepath.Join(t.TempDir(), "prefs.db"))

	require.NoError(t, repo.Set(ctx, "vybe-theme", "light"))
	value, err := repo.Get(ctx, "vybe-theme")
	require.NoError(t, err)
	assert.Equal(t, "light", value)

	require.NoError(t, repo.Set(ctx, "vybe-theme", "dark"))
	value, err = repo.Get(ctx, "vybe-theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", value)

	require.NoError(t, repo.Delete(ctx, "vybe-theme"))
	value, err = repo.Get(ctx, "vybe-theme")
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestPreferenceRepo_KeysAreIndependent(t *testing.T) {
	ctx := testCtx()
	repo, _ := newRepo(t, filepath.Join(t.TempDir(), "prefs.db"))

	require.NoError(t, repo.Set(ctx, "a", "dark"))
	require.NoError(t, repo.Set(ctx, "b", "light"))
	require.NoError(t, repo.Delete(ctx, "a"))

	value, err := repo.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "light", value)
}

func TestPreferenceRepo_SurvivesReopen(t *testing.T) {
	ctx := testCtx()
	dbPath := filepath.Join(t.TempDir(), "prefs.db")

	first := sqlite.NewLazyDB(dbPath)
	require.NoError(t, sqlite.NewPreferenceRepository(first, 0).Set(ctx, "vybe-theme", "light"))
	require.NoError(t, first.Close())

	repo, _ := newRepo(t, dbPath)
	value, err := repo.Get(ctx, "vybe-theme")
	require.NoError(t, err)
	assert.Equal(t, "light", value)
}

func TestPreferenceRepo_WatchSeesOtherConnection(t *testing.T) {
	ctx, cancel := context.WithCancel(testCtx())
	defer cancel()
	dbPath := filepath.Join(t.TempDir(), "prefs.db")

	watcherRepo, _ := newRepo(t, dbPath)
	writerRepo, _ := newRepo(t, dbPath)
	require.NoError(t, writerRepo.Set(ctx, "vybe-theme", "dark"))

	var mu sync.Mutex
	var seen []string
	done := make(chan error, 1)
	go func() {
		done <- watcherRepo.Watch(ctx, "vybe-theme", func(v string) {
			mu.Lock()
			seen = append(seen, v)
			mu.Unlock()
		})
	}()

	// Give Watch time to take its baseline.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, writerRepo.Set(ctx, "vybe-theme", "light"))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(seen) == 1 && seen[0] == "light"
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not stop")
	}
}

func TestLazyDB_NotInitializedByDefault(t *testing.T) {
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "test.db"))

	assert.False(t, lazy.IsInitialized(), "LazyDB should not be initialized before DB() is called")
	require.NoError(t, lazy.Close())
}

func TestLazyDB_ReturnsSameConnection(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "test.db"))
	t.Cleanup(func() { _ = lazy.Close() })

	db1, err := lazy.DB(ctx)
	require.NoError(t, err)
	db2, err := lazy.DB(ctx)
	require.NoError(t, err)

	assert.Same(t, db1, db2)
	assert.True(t, lazy.IsInitialized())
}

func TestLazyDB_ConcurrentAccess(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "test.db"))
	t.Cleanup(func() { _ = lazy.Close() })

	const goroutines = 10
	var wg sync.WaitGroup
	results := make(chan *sql.DB, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			db, err := lazy.DB(ctx)
			assert.NoError(t, err)
			results <- db
		}()
	}
	wg.Wait()
	close(results)

	var first *sql.DB
	for db := range results {
		if first == nil {
			first = db
			continue
		}
		assert.Same(t, first, db)
	}
}

func TestLazyDB_EmptyPathFails(t *testing.T) {
	lazy := sqlite.NewLazyDB("")

	_, err := lazy.DB(testCtx())

	require.Error(t, err)
	assert.False(t, lazy.IsInitialized())
}
