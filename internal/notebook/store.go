// Package notebook provides the durable collection of saved dictionary
// entries: an in-memory store backed by a snapshot repository.
package notebook

import (
	"fmt"
	"strings"
	"sync"

	"github.com/at-ishikawa/lingopop/internal/entry"
)

// Repository persists the notebook as one whole snapshot. Load is called once
// at startup; Save overwrites the full collection after every mutation.
type Repository interface {
	Load() ([]entry.Entry, error)
	Save(entries []entry.Entry) error
}

// Store is the sole durable state of the application. Entries are kept most
// recently saved first. Mutations are serialized under one mutex so the last
// write always reflects the latest in-memory state.
type Store struct {
	mu      sync.Mutex
	repo    Repository
	entries []entry.Entry
}

// NewStore loads the persisted notebook. A backing store with nothing in it
// yields an empty notebook.
func NewStore(repo Repository) (*Store, error) {
	entries, err := repo.Load()
	if err != nil {
		return nil, fmt.Errorf("repo.Load() > %w", err)
	}
	return &Store{
		repo:    repo,
		entries: entries,
	}, nil
}

// Add inserts the entry at the front unless an entry with the same id already
// exists. Dedup is by id only: the same term saved through two separate
// lookups produces two entries. Callers that want term-level dedup consult
// ContainsTerm first.
func (s *Store) Add(e entry.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.entries {
		if existing.ID == e.ID {
			return nil
		}
	}

	updated := append([]entry.Entry{e}, s.entries...)
	if err := s.repo.Save(updated); err != nil {
		return fmt.Errorf("repo.Save() > %w", err)
	}
	s.entries = updated
	return nil
}

// Remove deletes the entry with the id. Removing an unknown id is a no-op.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := -1
	for i, existing := range s.entries {
		if existing.ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		return nil
	}

	updated := make([]entry.Entry, 0, len(s.entries)-1)
	updated = append(updated, s.entries[:index]...)
	updated = append(updated, s.entries[index+1:]...)
	if err := s.repo.Save(updated); err != nil {
		return fmt.Errorf("repo.Save() > %w", err)
	}
	s.entries = updated
	return nil
}

// Entries returns a copy of the collection, newest first.
func (s *Store) Entries() []entry.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := make([]entry.Entry, len(s.entries))
	copy(entries, s.entries)
	return entries
}

// Len returns the number of saved entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Find returns the entry with the id, if present.
func (s *Store) Find(id string) (entry.Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.entries {
		if existing.ID == id {
			return existing, true
		}
	}
	return entry.Entry{}, false
}

// Terms returns the saved terms in notebook order.
func (s *Store) Terms() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	terms := make([]string, 0, len(s.entries))
	for _, existing := range s.entries {
		terms = append(terms, existing.Term)
	}
	return terms
}

// ContainsTerm reports whether a term is already saved, compared case
// insensitively. This is the "already saved" display check; it is a separate
// query from the id-based dedup of Add on purpose.
func (s *Store) ContainsTerm(term string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.entries {
		if strings.EqualFold(existing.Term, term) {
			return true
		}
	}
	return false
}
