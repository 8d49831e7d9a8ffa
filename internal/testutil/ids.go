package testutil

import (
	"fmt"
	"sync"
)

// SequentialIDs generates deterministic record ids: "<prefix>-1",
// "<prefix>-2", and so on.
//
// Unlike store.FixedGenerator, SequentialIDs never runs out.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type SequentialIDs struct {
	mu     sync.Mutex
	prefix string
	seq    int64
}

// NewSequentialIDs creates a generator whose first id is "<prefix>-1".
// An empty prefix becomes "emp".
func NewSequentialIDs(prefix string) *SequentialIDs {
	if prefix == "" {
		prefix = "emp"
	}
	return &SequentialIDs{prefix: prefix}
}

// Generate returns the next id.
//
// Implements store.IDGenerator.
func (g *SequentialIDs) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq++
	return fmt.Sprintf("%s-%d", g.prefix, g.seq)
}
