package jsonstore

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// Singleton stores one keyed structure as a JSON object file. It follows the
// same file contract as Collection: create-on-missing and whole-file replace
// through a temp-file rename. It carries no lock of its own; callers that
// need read-modify-write serialize access themselves.
type Singleton[T any] struct {
	path string
}

// NewSingleton creates a singleton store backed by the JSON object file at path.
func NewSingleton[T any](path string) *Singleton[T] {
	return &Singleton[T]{path: path}
}

// Path returns the backing file path.
func (s *Singleton[T]) Path() string {
	return s.path
}

// Read returns the stored value. A missing file is created and initialized
// to an empty object, and the zero value is returned.
func (s *Singleton[T]) Read() (T, error) {
	var value T

	if err := ensureFile(s.path, []byte("{}")); err != nil {
		return value, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return value, errors.Wrapf(err, "failed to read %s", s.path)
	}

	if isBlank(data) {
		return value, nil
	}

	if err := json.Unmarshal(data, &value); err != nil {
		return value, errors.Wrapf(err, "failed to decode %s", s.path)
	}

	return value, nil
}

// Write replaces the stored value.
func (s *Singleton[T]) Write(value T) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s", s.path)
	}

	if err := ensureFile(s.path, []byte("{}")); err != nil {
		return err
	}

	return atomicWrite(s.path, data)
}
