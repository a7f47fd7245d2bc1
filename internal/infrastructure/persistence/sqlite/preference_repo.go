package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vybe/themesync/internal/application/port"
	"github.com/vybe/themesync/internal/logging"
)

// DefaultWatchInterval is how often Watch checks for commits by other processes.
const DefaultWatchInterval = time.Second

type preferenceRepo struct {
	provider port.DatabaseProvider
	interval time.Duration
}

// PreferenceRepository is a SQLite-backed port.PreferenceStore that also
// reports changes committed by other processes.
type PreferenceRepository interface {
	port.PreferenceStore
	port.PreferenceWatcher
}

// NewPreferenceRepository creates a new SQLite-backed preference repository.
// A zero interval uses DefaultWatchInterval.
func NewPreferenceRepository(provider port.DatabaseProvider, interval time.Duration) PreferenceRepository {
	if interval <= 0 {
		interval = DefaultWatchInterval
	}
	return &preferenceRepo{provider: provider, interval: interval}
}

func (r *preferenceRepo) Get(ctx context.Context, key string) (string, error) {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return "", err
	}
	return getValue(ctx, db, key)
}

func getValue(ctx context.Context, db *sql.DB, key string) (string, error) {
	var value string
	err := db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read preference %q: %w", key, err)
	}
	return value, nil
}

func (r *preferenceRepo) Set(ctx context.Context, key, value string) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("key", key).Str("value", value).Msg("setting preference")

	db, err := r.provider.DB(ctx)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value)
	if err != nil {
		return fmt.Errorf("failed to write preference %q: %w", key, err)
	}
	return nil
}

func (r *preferenceRepo) Delete(ctx context.Context, key string) error {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, `DELETE FROM preferences WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete preference %q: %w", key, err)
	}
	return nil
}

// Watch polls PRAGMA data_version, which only moves when another connection
// commits, and reports the key's value whenever it differs from the last one seen.
func (r *preferenceRepo) Watch(ctx context.Context, key string, onChange func(value string)) error {
	log := logging.FromContext(ctx)

	db, err := r.provider.DB(ctx)
	if err != nil {
		return err
	}

	version, err := dataVersion(ctx, db)
	if err != nil {
		return err
	}
	last, err := getValue(ctx, db, key)
	if err != nil {
		return err
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		next, err := dataVersion(ctx, db)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			log.Warn().Err(err).Msg("failed to poll database version")
			continue
		}
		if next == version {
			continue
		}
		version = next

		value, err := getValue(ctx, db, key)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("failed to read changed preference")
			continue
		}
		if value == last {
			continue
		}
		last = value
		onChange(value)
	}
}

func dataVersion(ctx context.Context, db *sql.DB) (int64, error) {
	var v int64
	if err := db.QueryRowContext(ctx, `PRAGMA data_version`).Scan(&v); err != nil {
		return 0, fmt.Errorf("failed to read data_version: %w", err)
	}
	return v, nil
}
