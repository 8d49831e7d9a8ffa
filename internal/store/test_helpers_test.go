package store

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/roach88/roster/internal/slot"
	"github.com/roach88/roster/internal/testutil"
)

// createTestStore creates a store over a fresh in-memory slot with
// deterministic ids.
func createTestStore(t *testing.T, opts ...Option) (*Store, *slot.Memory) {
	t.Helper()
	mem := slot.NewMemory()
	opts = append([]Option{WithIDGenerator(testutil.NewSequentialIDs("emp"))}, opts...)
	s, err := Open(context.Background(), mem, opts...)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	return s, mem
}

// createSQLiteSlot opens a SQLite slot under t.TempDir().
func createSQLiteSlot(t *testing.T) (*slot.SQLite, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roster.db")
	sl, err := slot.OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	t.Cleanup(func() { sl.Close() })
	return sl, path
}

// captureLogger returns a logger writing text records into the returned
// buffer.
func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h), &buf
}
