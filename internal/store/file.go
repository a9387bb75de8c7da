package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps the progress map in a single JSON document with sorted
// keys and four-space indentation.
type FileStore struct {
	path string
}

var _ Store = (*FileStore)(nil)

// NewFileStore returns a JSON-backed store at path. The file is not touched
// until the first Load or Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Close() error { return nil }

func (s *FileStore) Load(ctx context.Context) (Progress, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read progress: %w", err)
	}
	return Decode(data)
}

func (s *FileStore) Save(ctx context.Context, p Progress) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := Encode(p)
	if err != nil {
		return err
	}
	if err := EnsureDir(s.path); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	// Write to a sibling temp file and rename so a crash never leaves a
	// truncated document behind.
	tmp, err := os.CreateTemp(filepath.Dir(s.path), "."+filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write progress: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sync progress: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close progress: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace progress: %w", err)
	}
	return nil
}

// Encode renders p as the on-disk JSON document.
func Encode(p Progress) ([]byte, error) {
	if p == nil {
		p = Progress{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(p); err != nil {
		return nil, fmt.Errorf("marshal progress: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses and validates an on-disk JSON document.
func Decode(data []byte) (Progress, error) {
	if err := validateDocument(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStore, err)
	}
	var p Progress
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStore, err)
	}
	if p == nil {
		p = make(Progress)
	}
	return p, nil
}
