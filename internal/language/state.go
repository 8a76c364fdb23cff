package language

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// selectionState is the persisted form of a Selection. Only the codes are
// stored; display names and flags come from the catalog.
type selectionState struct {
	Native string `yaml:"native"`
	Target string `yaml:"target"`
}

// LoadSelection reads a persisted selection. A missing file falls back to
// the given default codes.
func LoadSelection(path, defaultNative, defaultTarget string) (*Selection, error) {
	contents, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return NewSelectionFromCodes(defaultNative, defaultTarget)
	}
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}

	var state selectionState
	if err := yaml.Unmarshal(contents, &state); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal > %w", err)
	}
	return NewSelectionFromCodes(state.Native, state.Target)
}

// SaveSelection persists the selection as one whole-file snapshot, so both
// languages are always written together.
func SaveSelection(path string, s *Selection) error {
	native, target := s.Languages()
	contents, err := yaml.Marshal(selectionState{
		Native: native.Code,
		Target: target.Code,
	})
	if err != nil {
		return fmt.Errorf("yaml.Marshal > %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
		}
	}
	if err := os.WriteFile(path, contents, 0644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}
	return nil
}
