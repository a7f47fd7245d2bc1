package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

const (
	logDirPerm  = 0o750
	logFilePerm = 0o600
)

// FileRotator is an io.WriteCloser that rotates its file once it grows past
// maxSize, keeping at most maxBackups rotated copies next to it.
type FileRotator struct {
	mu          sync.Mutex
	dir         string
	name        string
	maxSize     int64
	maxBackups  int
	current     *os.File
	currentSize int64
}

// NewFileRotator opens (or creates) dir/name for appending.
func NewFileRotator(dir, name string, maxSizeMB, maxBackups int) (*FileRotator, error) {
	if maxSizeMB <= 0 {
		maxSizeMB = 10
	}
	if err := os.MkdirAll(dir, logDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	r := &FileRotator{
		dir:        dir,
		name:       name,
		maxSize:    int64(maxSizeMB) * 1024 * 1024,
		maxBackups: maxBackups,
	}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

// Path returns the active log file path.
func (r *FileRotator) Path() string {
	return filepath.Join(r.dir, r.name)
}

func (r *FileRotator) open() error {
	path := r.Path()
	r.currentSize = 0
	if info, err := os.Stat(path); err == nil {
		r.currentSize = info.Size()
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	r.current = file
	return nil
}

func (r *FileRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}

	if r.currentSize > 0 && r.currentSize+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.current.Write(p)
	r.currentSize += int64(n)
	return n, err
}

func (r *FileRotator) rotate() error {
	if err := r.current.Close(); err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	r.current = nil

	backup := fmt.Sprintf("%s.%s", r.Path(), time.Now().Format("20060102-150405.000000"))
	if err := os.Rename(r.Path(), backup); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}

	r.prune()
	return r.open()
}

// prune removes the oldest backups beyond maxBackups.
func (r *FileRotator) prune() {
	if r.maxBackups <= 0 {
		return
	}
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return
	}

	var backups []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), r.name+".") {
			backups = append(backups, e.Name())
		}
	}
	if len(backups) <= r.maxBackups {
		return
	}

	// Timestamp suffixes sort chronologically.
	sort.Strings(backups)
	for _, name := range backups[:len(backups)-r.maxBackups] {
		_ = os.Remove(filepath.Join(r.dir, name))
	}
}

// Close closes the active file.
func (r *FileRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil {
		return nil
	}
	err := r.current.Close()
	r.current = nil
	return err
}
