// Package slot provides durable key-value slots for the record store.
//
// A slot holds opaque byte blobs under string keys. The record store keeps
// its whole collection in one slot key and rewrites it after every
// mutation, so implementations only need point reads and upserts.
//
// Two implementations are provided:
//   - SQLite: a file-backed database, the durable default
//   - Memory: a map, with failure injection for tests
package slot

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key holds no value.
var ErrNotFound = errors.New("slot: key not found")

// Slot is a durable key-value store.
type Slot interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the slot.
	Close() error
}
