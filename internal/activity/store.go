// internal/activity/store.go
package activity

import (
	"errors"
	"time"
)

// DefaultLimit is how many entries a Store keeps when no limit is given.
const DefaultLimit = 200

// ErrNotFound is returned for unknown entry IDs.
var ErrNotFound = errors.New("activity entry not found")

// Store keeps the most recent requests of a session in memory. Nothing is
// ever written to disk. It is only touched from the UI update loop.
type Store struct {
	entries []Entry
	nextID  int64
	limit   int
	now     func() time.Time
}

// NewStore creates a store that keeps at most limit entries.
func NewStore(limit int) *Store {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Store{limit: limit, nextID: 1, now: time.Now}
}

// Start records a dispatched request and returns its ID.
func (s *Store) Start(kind Kind, input string) int64 {
	e := Entry{
		ID:        s.nextID,
		Kind:      kind,
		Input:     input,
		StartedAt: s.now(),
		Status:    StatusPending,
	}
	s.nextID++
	s.entries = append(s.entries, e)
	s.enforceLimit()
	return e.ID
}

// Finish records the outcome of request id.
func (s *Store) Finish(id int64, results int, err error) error {
	e := s.find(id)
	if e == nil {
		return ErrNotFound
	}
	e.DurationMs = s.now().Sub(e.StartedAt).Milliseconds()
	e.Results = results
	if err != nil {
		e.Status = StatusError
		e.ErrorMessage = err.Error()
		return nil
	}
	e.Status = StatusSuccess
	return nil
}

// MarkStale flags request id as answered after its input was superseded.
func (s *Store) MarkStale(id int64) error {
	e := s.find(id)
	if e == nil {
		return ErrNotFound
	}
	e.Stale = true
	return nil
}

// Get returns a copy of entry id.
func (s *Store) Get(id int64) (Entry, error) {
	e := s.find(id)
	if e == nil {
		return Entry{}, ErrNotFound
	}
	return *e, nil
}

// List returns entries newest first, at most limit of them (all when limit <= 0).
func (s *Store) List(limit int) []Entry {
	n := len(s.entries)
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]Entry, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, s.entries[i])
	}
	return out
}

// Pending counts requests still in flight.
func (s *Store) Pending(kind Kind) int {
	count := 0
	for _, e := range s.entries {
		if e.Kind == kind && e.Status == StatusPending {
			count++
		}
	}
	return count
}

// Len returns the number of entries kept.
func (s *Store) Len() int {
	return len(s.entries)
}

func (s *Store) find(id int64) *Entry {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].ID == id {
			return &s.entries[i]
		}
	}
	return nil
}

// enforceLimit drops the oldest entries beyond the limit.
func (s *Store) enforceLimit() {
	if over := len(s.entries) - s.limit; over > 0 {
		s.entries = append(s.entries[:0:0], s.entries[over:]...)
	}
}
