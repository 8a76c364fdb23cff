package entry

import (
	"context"
	"errors"
	"sync"

	"github.com/at-ishikawa/lingopop/internal/language"
)

// ErrSupersededSearch reports that a newer search started before this one
// finished. The late result is discarded instead of clobbering the newer one.
var ErrSupersededSearch = errors.New("search superseded by a newer search")

// Searcher owns the transient current result. There is no cancellation:
// every search takes a new generation token, and a result is published only
// if its generation is still the latest.
type Searcher struct {
	assembler *Assembler

	mu         sync.Mutex
	generation uint64
	current    *Entry
}

func NewSearcher(assembler *Assembler) *Searcher {
	return &Searcher{assembler: assembler}
}

// Search runs a lookup and publishes the result as the current one, unless a
// newer search started in the meantime, in which case it returns
// ErrSupersededSearch. Starting a search clears the previous current result.
func (s *Searcher) Search(
	ctx context.Context,
	term string,
	native language.Language,
	target language.Language,
) (Entry, error) {
	s.mu.Lock()
	s.generation++
	generation := s.generation
	s.current = nil
	s.mu.Unlock()

	result, err := s.assembler.Lookup(ctx, term, native, target)
	if err != nil {
		return Entry{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if generation != s.generation {
		return Entry{}, ErrSupersededSearch
	}
	s.current = &result
	return result, nil
}

// Current returns the most recent published result, if any.
func (s *Searcher) Current() (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return Entry{}, false
	}
	return *s.current, true
}

// Clear drops the current result.
func (s *Searcher) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}
