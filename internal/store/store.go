// Package store implements the financial state store: the single
// source of truth for all collections, with write-through persistence
// and copy-on-write snapshots.
package store

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mavit/mavit-cash/internal/model"
)

// Persister loads and saves the full state snapshot. The file store in
// internal/storage is the production implementation.
type Persister interface {
	Load() (*model.Snapshot, error)
	Save(model.Snapshot) error
}

// Store owns the financial collections and mediates every mutation.
//
// The store performs no field validation; form layers are expected to
// reject bad payloads before calling it. Mutations on absent ids are
// silent no-ops. Every mutation replaces the affected collection with a
// fresh slice, so snapshots handed to readers never observe a partially
// applied update.
//
// After each mutation the full snapshot is handed to the persister;
// persist failures are logged and swallowed, leaving the in-memory
// state authoritative for the session.
type Store struct {
	persist Persister
	now     func() time.Time
	newID   func() string
	state   model.Snapshot
	mu      sync.RWMutex
}

// Option customizes a Store.
type Option func(*Store)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides the id source, for tests.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// New creates a store bound to the given persister. Call Init before
// use.
func New(persist Persister, opts ...Option) *Store {
	s := &Store{
		persist: persist,
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init loads the persisted state, falling back to factory defaults when
// nothing readable is stored. Startup never fails on bad data.
func (s *Store) Init() {
	snap, err := s.persist.Load()
	if err != nil {
		slog.Warn("failed to load persisted state, starting fresh", "error", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if snap == nil {
		s.state = defaultSnapshot(s.now())
		slog.Debug("initialized state from factory defaults")
		return
	}
	s.state = *snap
	slog.Debug("restored persisted state",
		"expenses", len(snap.Expenses),
		"budgets", len(snap.Budgets),
		"goals", len(snap.Goals),
		"debts", len(snap.Debts),
		"categories", len(snap.Categories))
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() model.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Flush persists the current snapshot immediately, returning the write
// error. Mutations persist fire-and-forget; callers that need a
// deterministic final write (process teardown) use Flush.
func (s *Store) Flush() error {
	s.mu.RLock()
	snap := s.state.Clone()
	s.mu.RUnlock()
	return s.persist.Save(snap)
}

// mutate applies fn to the state under the write lock, then persists
// the resulting snapshot. Persist errors are logged, never surfaced:
// the in-memory state has already changed and remains authoritative.
func (s *Store) mutate(fn func(*model.Snapshot)) {
	s.mu.Lock()
	fn(&s.state)
	snap := s.state.Clone()
	s.mu.Unlock()

	if err := s.persist.Save(snap); err != nil {
		slog.Error("failed to persist state", "error", err)
	}
}

// stamp returns the current time used for created/updated timestamps.
func (s *Store) stamp() time.Time {
	return s.now()
}
