package language

import (
	"fmt"
	"sync"
)

// Selection holds the session's native and target language choice. All reads
// and writes go through one mutex so both languages always change together:
// a swap is never observable half way.
type Selection struct {
	mu     sync.Mutex
	native Language
	target Language
}

// NewSelection returns the default selection, the first two catalog entries.
func NewSelection() *Selection {
	return &Selection{
		native: SupportedLanguages[0],
		target: SupportedLanguages[1],
	}
}

// NewSelectionFromCodes builds a selection from two catalog codes.
func NewSelectionFromCodes(nativeCode, targetCode string) (*Selection, error) {
	native, ok := ByCode(nativeCode)
	if !ok {
		return nil, fmt.Errorf("unsupported native language code: %s", nativeCode)
	}
	target, ok := ByCode(targetCode)
	if !ok {
		return nil, fmt.Errorf("unsupported target language code: %s", targetCode)
	}
	return &Selection{native: native, target: target}, nil
}

// Languages returns the current native and target languages as one snapshot.
func (s *Selection) Languages() (Language, Language) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.native, s.target
}

// Swap exchanges the native and target languages.
func (s *Selection) Swap() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.native, s.target = s.target, s.native
}

// Set replaces both languages at once.
func (s *Selection) Set(native, target Language) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.native = native
	s.target = target
}
