package notebook

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/lingopop/internal/entry"
)

// YAMLRepository persists the notebook as one YAML snapshot file. Every Save
// overwrites the whole file; there is no partial write or migration
// versioning.
type YAMLRepository struct {
	path string
}

func NewYAMLRepository(path string) *YAMLRepository {
	return &YAMLRepository{
		path: path,
	}
}

// Load reads the snapshot. A missing file loads an empty notebook.
func (r *YAMLRepository) Load() ([]entry.Entry, error) {
	file, err := os.Open(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("os.Open(%s) > %w", r.path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	var entries []entry.Entry
	if err := yaml.NewDecoder(file).Decode(&entries); err != nil {
		// a truncated or never-written file is an empty notebook
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("yaml.NewDecoder().Decode() > %w", err)
	}
	return entries, nil
}

// Save overwrites the snapshot with the full collection.
func (r *YAMLRepository) Save(entries []entry.Entry) error {
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
		}
	}

	file, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("os.Create(%s) > %w", r.path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := yaml.NewEncoder(file).Encode(entries); err != nil {
		return fmt.Errorf("yaml.NewEncoder().Encode() > %w", err)
	}
	return nil
}
