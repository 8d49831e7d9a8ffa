package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/roach88/roster/internal/employee"
	"github.com/roach88/roster/internal/slot"
)

// DefaultKey is the slot key holding the serialized collection.
const DefaultKey = "employees"

// maxIDAttempts bounds id regeneration on collision.
const maxIDAttempts = 16

// Store owns the canonical employee collection.
//
// A Store is created once per process with Open and passed to whatever
// needs it. Its methods are safe to call from multiple goroutines, though
// the intended use is a single writer.
type Store struct {
	mu sync.Mutex

	slot   slot.Slot
	key    string
	logger *slog.Logger
	ids    IDGenerator
	seed   []employee.Employee

	records []employee.Employee
	current *employee.Employee
	view    ViewState
	lastErr error
}

// Option configures a Store.
type Option func(*Store)

// WithKey sets the slot key. Defaults to DefaultKey.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// WithLogger sets the logger receiving persistence failures. Defaults to a
// logger that discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithIDGenerator overrides the id generator (for testing).
// Defaults to UUIDv7Generator.
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *Store) { s.ids = gen }
}

// WithSeed sets the records used when the slot holds no usable collection.
func WithSeed(records []employee.Employee) Option {
	return func(s *Store) { s.seed = records }
}

// Open creates a store over sl and hydrates it from the slot.
//
// Hydration never fails: a missing, unreadable or corrupt blob is logged
// and replaced by the seed records. A seed used because the key was absent
// is persisted right away. Open only returns an error for a nil slot, an
// empty key, or duplicate ids in the seed.
func Open(ctx context.Context, sl slot.Slot, opts ...Option) (*Store, error) {
	if sl == nil {
		return nil, errors.New("open store: nil slot")
	}

	s := &Store{
		slot:   sl,
		key:    DefaultKey,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		ids:    UUIDv7Generator{},
		view:   DefaultViewState(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.key == "" {
		return nil, errors.New("open store: empty slot key")
	}
	if err := checkUniqueIDs(s.seed); err != nil {
		return nil, fmt.Errorf("open store: seed: %w", err)
	}

	s.hydrate(ctx)
	return s, nil
}

func (s *Store) hydrate(ctx context.Context) {
	data, err := s.slot.Get(ctx, s.key)
	switch {
	case errors.Is(err, slot.ErrNotFound):
		s.records = cloneRecords(s.seed)
		if len(s.records) > 0 {
			s.logger.Info("initialising store from seed", "key", s.key, "records", len(s.records))
			s.persist(ctx, "seed")
		}
		return
	case err != nil:
		s.logger.Warn("reading stored employees failed, using seed",
			"key", s.key,
			"error", &PersistenceError{Op: "load", Key: s.key, Err: err})
		s.records = cloneRecords(s.seed)
		return
	}

	records, err := unmarshalEmployees(data)
	if err != nil {
		s.logger.Warn("stored employees are corrupt, using seed",
			"key", s.key,
			"bytes", len(data),
			"error", err)
		s.records = cloneRecords(s.seed)
		return
	}

	s.records = s.repair(records)
	s.logger.Debug("store hydrated", "key", s.key, "records", len(s.records))
}

// repair restores id uniqueness on a loaded collection: records without an
// id get a fresh one, and later duplicates of an id are dropped.
func (s *Store) repair(records []employee.Employee) []employee.Employee {
	taken := make(map[string]bool, len(records))
	for _, e := range records {
		taken[e.ID] = true
	}

	seen := make(map[string]bool, len(records))
	out := records[:0]
	for _, e := range records {
		if e.ID == "" {
			e.ID = s.newIDLocked(taken)
			taken[e.ID] = true
			s.logger.Warn("stored employee had no id, assigned one", "id", e.ID)
		}
		if seen[e.ID] {
			s.logger.Warn("dropping stored employee with duplicate id", "id", e.ID)
			continue
		}
		seen[e.ID] = true
		out = append(out, e)
	}
	return out
}

// Add stores a new record built from in and returns it. The store assigns
// the id and defaults an empty currency to USD. Input is not validated.
func (s *Store) Add(ctx context.Context, in employee.Input) employee.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	taken := make(map[string]bool, len(s.records))
	for _, e := range s.records {
		taken[e.ID] = true
	}

	e := employee.New(s.newIDLocked(taken), in)
	s.records = append(s.records, e)
	s.persist(ctx, "add")
	return e
}

// newIDLocked draws ids until one is unused. Generated UUIDv7s never
// collide, so the panic is reached only with a broken injected IDGenerator
// that keeps returning taken or empty ids.
func (s *Store) newIDLocked(taken map[string]bool) string {
	for i := 0; i < maxIDAttempts; i++ {
		id := s.ids.Generate()
		if id != "" && !taken[id] {
			return id
		}
	}
	panic(fmt.Sprintf("store: id generator produced %d colliding ids", maxIDAttempts))
}

// Update applies p to the record with the given id and returns the result.
// Returns ErrNotFound, leaving the collection unchanged, if no record has
// that id.
func (s *Store) Update(ctx context.Context, id string, p employee.Patch) (employee.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return employee.Employee{}, fmt.Errorf("update %q: %w", id, ErrNotFound)
	}

	updated := s.records[i].Apply(p)
	s.records[i] = updated
	if s.current != nil && s.current.ID == id {
		c := updated
		s.current = &c
	}
	s.persist(ctx, "update")
	return updated, nil
}

// Delete removes the record with the given id and reports whether one was
// removed. A missing id leaves the collection and the slot untouched.
func (s *Store) Delete(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return false
	}

	s.records = append(s.records[:i], s.records[i+1:]...)
	if s.current != nil && s.current.ID == id {
		s.current = nil
	}
	s.persist(ctx, "delete")
	return true
}

// Get returns the record with the given id.
func (s *Store) Get(id string) (employee.Employee, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return employee.Employee{}, false
	}
	return s.records[i], true
}

// List returns a copy of the collection in insertion order.
func (s *Store) List() []employee.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneRecords(s.records)
}

// Query returns the records matching term, ordered by field and dir.
// See employee.Query for the matching and ordering rules.
func (s *Store) Query(term string, field employee.SortField, dir employee.Direction) []employee.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	return employee.Query(s.records, term, field, dir)
}

// Count returns the number of records.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Reset empties the store, clears the view state and the current employee,
// and persists the empty collection.
func (s *Store) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = []employee.Employee{}
	s.current = nil
	s.view = DefaultViewState()
	s.persist(ctx, "reset")
}

// LastPersistError returns the most recent swallowed write failure, or nil
// if the last write succeeded.
func (s *Store) LastPersistError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// persist writes the whole collection to the slot. Failures are logged and
// kept for LastPersistError, never returned. Caller holds s.mu.
func (s *Store) persist(ctx context.Context, op string) {
	data, err := marshalEmployees(s.records)
	if err == nil {
		err = s.slot.Put(ctx, s.key, data)
	}
	if err != nil {
		pe := &PersistenceError{Op: op, Key: s.key, Err: err}
		s.lastErr = pe
		s.logger.Error("persisting employees failed, continuing in memory",
			"op", op,
			"key", s.key,
			"records", len(s.records),
			"error", err)
		return
	}

	s.lastErr = nil
	s.logger.Debug("employees persisted",
		"op", op,
		"key", s.key,
		"records", len(s.records),
		"bytes", len(data))
}

func (s *Store) indexLocked(id string) int {
	for i, e := range s.records {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func cloneRecords(records []employee.Employee) []employee.Employee {
	out := make([]employee.Employee, len(records))
	copy(out, records)
	return out
}

func checkUniqueIDs(records []employee.Employee) error {
	seen := make(map[string]bool, len(records))
	for _, e := range records {
		if e.ID == "" {
			return errors.New("record without id")
		}
		if seen[e.ID] {
			return fmt.Errorf("duplicate id %q", e.ID)
		}
		seen[e.ID] = true
	}
	return nil
}
