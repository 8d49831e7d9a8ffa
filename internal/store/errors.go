package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an operation targets an id that is not in
// the store.
var ErrNotFound = errors.New("employee not found")

// PersistenceError describes a durable slot operation that failed. Write
// failures are never returned from mutating operations; they are logged and
// kept for LastPersistError.
type PersistenceError struct {
	Op  string // "add", "update", "delete", "reset", "seed", "load"
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist %s (key %q): %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
