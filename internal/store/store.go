// Package store persists named JSON documents in a flat data directory.
// Each logical collection lives in one file; a save rewrites the file in
// full, so the last successful save wins.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// dirPerm is the mode used when creating the data directory.
const dirPerm = 0o755

// filePerm is the mode used when writing documents.
const filePerm = 0o644

// Store reads and writes JSON documents under a single directory.
type Store struct {
	dir string
}

// New creates a store rooted at dir. The directory is created lazily on the
// first save, so a read-only run against a missing directory still works.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Load reads the named document into v. A missing file is not an error: Load
// returns (false, nil) and leaves v untouched, so callers keep their default.
// A file that exists but does not parse is an error, since overwriting a
// corrupted store blindly risks silent data loss.
func (s *Store) Load(name string, v any) (bool, error) {
	raw, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load %s: %w", name, err)
	}

	if unmarshalErr := json.Unmarshal(raw, v); unmarshalErr != nil {
		return false, fmt.Errorf("load %s: %w", name, unmarshalErr)
	}

	return true, nil
}

// Save serializes v with 2-space indentation and overwrites the named
// document. HTML escaping is disabled so URLs and non-ASCII text are stored
// literally, keeping the files human-diffable.
func (s *Store) Save(name string, v any) error {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}

	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}

	if err := os.WriteFile(filepath.Join(s.dir, name), buf.Bytes(), filePerm); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}

	return nil
}
