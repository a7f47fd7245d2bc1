// Package file persists each preference key as a small file in a directory,
// so shell scripts and other processes can read the active choice directly.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/vybe/themesync/internal/application/port"
	"github.com/vybe/themesync/internal/logging"
)

const (
	dirPerm  = 0o750
	filePerm = 0o600
)

// ErrInvalidKey is returned for keys that cannot be used as a file name.
var ErrInvalidKey = errors.New("invalid preference key")

// Store implements port.PreferenceStore and port.PreferenceWatcher.
type Store struct {
	dir string
}

var (
	_ port.PreferenceStore   = (*Store)(nil)
	_ port.PreferenceWatcher = (*Store)(nil)
)

// NewStore creates a store rooted at dir. The directory is created lazily on
// the first write.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory holding the preference files.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(key string) (string, error) {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) || strings.HasPrefix(key, ".") {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(s.dir, key), nil
}

// Get implements port.PreferenceStore.
func (s *Store) Get(_ context.Context, key string) (string, error) {
	path, err := s.path(key)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read preference file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Set implements port.PreferenceStore. The write goes through a temp file and
// a rename so readers never observe a partial value.
func (s *Store) Set(ctx context.Context, key, value string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create preference directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+key+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.WriteString(value + "\n"); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write preference file: %w", err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to chmod preference file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close preference file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace preference file: %w", err)
	}

	logging.FromContext(ctx).Debug().Str("path", path).Str("value", value).Msg("preference written")
	return nil
}

// Delete implements port.PreferenceStore.
func (s *Store) Delete(_ context.Context, key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete preference file: %w", err)
	}
	return nil
}

// Watch implements port.PreferenceWatcher using fsnotify on the store
// directory. Writes are atomic renames, so only the final name is of interest.
func (s *Store) Watch(ctx context.Context, key string, onChange func(value string)) error {
	log := logging.FromContext(ctx)

	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create preference directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(s.dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", s.dir, err)
	}

	last, err := s.Get(ctx, key)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Str("dir", s.dir).Msg("preference watcher error")
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}

			value, err := s.Get(ctx, key)
			if err != nil {
				log.Warn().Err(err).Str("path", path).Msg("failed to read changed preference")
				continue
			}
			if value == last {
				continue
			}
			last = value
			onChange(value)
		}
	}
}
