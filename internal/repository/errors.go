package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrStorageUnavailable is returned when the durable location cannot be read or written
	ErrStorageUnavailable = errors.New("preset storage unavailable")
	// ErrStorageCorrupt is returned when durable data exists but cannot be parsed
	ErrStorageCorrupt = errors.New("preset storage corrupt")
	// ErrNotFound is returned when a named record does not exist
	ErrNotFound = errors.New("not found")
	// ErrBundleNotFound is returned by a BundleSource whose bundle is missing
	ErrBundleNotFound = errors.New("bundled presets not found")
)

// StorageError describes a failed storage operation. It matches both its
// kind (ErrStorageUnavailable or ErrStorageCorrupt) and the underlying cause
// with errors.Is.
type StorageError struct {
	Op   string
	Path string
	Kind error
	Err  error
}

func (e *StorageError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Kind)
	}
	return fmt.Sprintf("%s %s: %v: %v", e.Op, e.Path, e.Kind, e.Err)
}

func (e *StorageError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// Unavailable wraps err as an ErrStorageUnavailable failure
func Unavailable(op, path string, err error) error {
	return &StorageError{Op: op, Path: path, Kind: ErrStorageUnavailable, Err: err}
}

// Corrupt wraps err as an ErrStorageCorrupt failure
func Corrupt(op, path string, err error) error {
	return &StorageError{Op: op, Path: path, Kind: ErrStorageCorrupt, Err: err}
}
