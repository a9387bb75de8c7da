package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store loads and saves the full progress map. Every Save replaces the
// persisted state in full.
type Store interface {
	// Load returns the persisted progress, or ErrNotFound if nothing has
	// been saved yet.
	Load(ctx context.Context) (Progress, error)

	// Save persists p in full.
	Save(ctx context.Context, p Progress) error

	// Path returns the location of the persisted state.
	Path() string

	// Close releases any resources held by the store.
	Close() error
}

// Open returns the store for path. Paths ending in .db, .sqlite or
// .sqlite3 use the SQLite backend; anything else is a JSON document.
func Open(path string) (Store, error) {
	if path == "" {
		return nil, fmt.Errorf("open store: empty path")
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return OpenSQLite(path)
	default:
		return NewFileStore(path), nil
	}
}

// LoadOrEmpty loads the progress map, treating a missing store as empty.
func LoadOrEmpty(ctx context.Context, s Store) (Progress, error) {
	p, err := s.Load(ctx)
	if errors.Is(err, ErrNotFound) {
		return make(Progress), nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
