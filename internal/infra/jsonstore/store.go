// Package jsonstore implements whole-file JSON persistence for a named
// record collection. Every read loads the entire file and every write
// replaces it; there is no index, no cache and no partial update. The
// target datasets are small enough that simplicity wins over performance.
package jsonstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// Collection stores a homogeneous slice of records as one JSON array file.
// All operations run under a per-collection mutex, so a read-modify-write
// cycle through Update can never lose a concurrent writer's records.
// The lock is in-process only; separate processes sharing the file are
// not coordinated.
type Collection[T any] struct {
	path string
	mu   sync.Mutex
}

// NewCollection creates a collection backed by the JSON array file at path.
// The file is not touched until the first read or write.
func NewCollection[T any](path string) *Collection[T] {
	return &Collection[T]{path: path}
}

// Path returns the backing file path.
func (c *Collection[T]) Path() string {
	return c.path
}

// ReadAll returns every record in file order. A missing file (or missing
// parent directory) is created and initialized to an empty array, and an
// empty slice is returned. Malformed content is surfaced as an error rather
// than masked as "no data".
func (c *Collection[T]) ReadAll() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.readLocked()
}

// WriteAll replaces the file content with the given records. The write goes
// to a temporary file in the same directory followed by a rename, so a crash
// mid-write leaves the previous content intact.
func (c *Collection[T]) WriteAll(records []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.writeLocked(records)
}

// Update runs a full read-modify-write cycle under the collection lock.
// The callback receives the current records and returns the records to
// persist. Returning an error from the callback aborts the cycle without
// touching the file.
func (c *Collection[T]) Update(fn func(records []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.readLocked()
	if err != nil {
		return err
	}

	updated, err := fn(records)
	if err != nil {
		return err
	}

	return c.writeLocked(updated)
}

func (c *Collection[T]) readLocked() ([]T, error) {
	if err := ensureFile(c.path, []byte("[]")); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read collection %s", c.path)
	}

	if isBlank(data) {
		return []T{}, nil
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.Wrapf(err, "failed to decode collection %s", c.path)
	}
	if records == nil {
		records = []T{}
	}

	return records, nil
}

func (c *Collection[T]) writeLocked(records []T) error {
	if records == nil {
		records = []T{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "failed to encode collection %s", c.path)
	}

	return atomicWrite(c.path, data)
}

// ensureFile creates the parent directory and initializes the file with the
// given empty representation when either is missing.
func ensureFile(path string, empty []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "failed to create data directory for %s", path)
	}

	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed to stat %s", path)
	}

	return atomicWrite(path, empty)
}

// atomicWrite replaces the file at path through a temp-file-then-rename
// sequence. The temp file lives in the destination directory so the rename
// stays on one filesystem.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrapf(err, "failed to create temp file for %s", path)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)

		return errors.Wrapf(err, "failed to write temp file for %s", path)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)

		return errors.Wrapf(err, "failed to close temp file for %s", path)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)

		return errors.Wrapf(err, "failed to replace %s", path)
	}

	return nil
}

func isBlank(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		default:
			return false
		}
	}

	return true
}
