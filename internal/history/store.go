package history

import (
	"slices"
	"sync"
)

// DefaultHistoryLimit is the retained entry count when none is configured.
const DefaultHistoryLimit = 50

// Store owns the in-memory history sequence and its backing file. The
// sequence is ordered most-recent-first, holds no two content-equal entries,
// and never exceeds the limit. Every mutation is flushed to disk before the
// call returns. All methods are safe for concurrent use; callers only ever
// see disconnected snapshots.
type Store struct {
	mu      sync.Mutex
	path    string
	limit   int
	entries []Entry
}

// Open loads the history file at path (if present) and returns a store
// bounded to limit. Limits of zero or below fall back to
// DefaultHistoryLimit. A corrupt file is an error.
func Open(path string, limit int) (*Store, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	entries, err := LoadHistory(path, limit)
	if err != nil {
		return nil, err
	}
	return &Store{path: path, limit: limit, entries: entries}, nil
}

// OpenDefault opens the store at the platform default cache path.
func OpenDefault(limit int) (*Store, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return Open(path, limit)
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Limit returns the configured maximum entry count.
func (s *Store) Limit() int { return s.limit }

// Len returns the current entry count.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Snapshot returns a deep copy of the history, most recent first.
func (s *Store) Snapshot() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, len(s.entries))
	for i, entry := range s.entries {
		out[i] = entry.Clone()
	}
	return out
}

// Record inserts entry at the front of the history, deduplicating by
// content: an existing equal entry is moved to the front (adopting the new
// entry's provenance), and the oldest entries are evicted past the limit.
// It returns true when the in-memory history changed. Empty entries and
// entries already at the front are rejected without touching the file.
//
// A non-nil error means the change was not persisted; the in-memory state
// is not rolled back, so callers should treat it as "changed in memory but
// not durably saved".
func (s *Store) Record(entry Entry) (bool, error) {
	if entry.IsEmpty() {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.entries, func(e Entry) bool { return e.ContentEquals(entry) })
	if idx == 0 {
		return false, nil
	}
	if idx > 0 {
		s.entries = slices.Delete(s.entries, idx, idx+1)
	}

	s.entries = slices.Insert(s.entries, 0, entry)
	if len(s.entries) > s.limit {
		s.entries = s.entries[:s.limit]
	}

	if err := SaveHistory(s.path, s.entries); err != nil {
		return true, err
	}
	return true, nil
}

// Clear empties the history and persists the empty state.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	return SaveHistory(s.path, s.entries)
}
