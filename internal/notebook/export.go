package notebook

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/at-ishikawa/lingopop/internal/entry"
)

// Export writes the full ordered collection as indented JSON, the same
// artifact the user downloads. Every field round-trips losslessly through
// ParseExport.
func (s *Store) Export(w io.Writer) error {
	entries := s.Entries()

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(entries); err != nil {
		return fmt.Errorf("json.Encode() > %w", err)
	}
	return nil
}

// ParseExport reads an export artifact back into entries.
func ParseExport(r io.Reader) ([]entry.Entry, error) {
	var entries []entry.Entry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("json.Decode() > %w", err)
	}
	return entries, nil
}
