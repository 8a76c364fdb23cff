// Package testutil provides shared test helpers for creating config files
// and notebook fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/lingopop/internal/entry"
	"github.com/at-ishikawa/lingopop/internal/notebook"
)

// SetupTestConfig creates a minimal config file and the directories it points
// at. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	for _, d := range []string{"notebooks", "stories", "audio"} {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, d), 0755))
	}

	configContent := fmt.Sprintf(`notebook:
  store: file
  path: %s
languages:
  native: en
  target: es
  state_path: %s
outputs:
  story_directory: %s
  audio_directory: %s
openai:
  api_key: fake-key-for-testing
  model: gpt-4o-mini
`,
		filepath.Join(tmpDir, "notebooks", "notebook.yml"),
		filepath.Join(tmpDir, "notebooks", "languages.yml"),
		filepath.Join(tmpDir, "stories"),
		filepath.Join(tmpDir, "audio"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// EntryOption configures optional fields of a test entry.
type EntryOption func(*entry.Entry)

// WithID overrides the fixture id.
func WithID(id string) EntryOption {
	return func(e *entry.Entry) {
		e.ID = id
	}
}

// WithImageURL sets the fixture illustration.
func WithImageURL(imageURL string) EntryOption {
	return func(e *entry.Entry) {
		e.ImageURL = imageURL
	}
}

// NewEntry creates a saved-entry fixture for a term.
func NewEntry(term string, opts ...EntryOption) entry.Entry {
	e := entry.Entry{
		ID:         "id-" + term,
		Term:       term,
		Phonetic:   "/" + term + "/",
		Definition: "definition of " + term,
		Examples: []entry.Example{
			{Target: term + " uno", Native: term + " one"},
			{Target: term + " dos", Native: term + " two"},
		},
		UsageNote:  "note about " + term,
		NativeLang: "en",
		TargetLang: "es",
		CreatedAt:  1700000000000,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// SeedNotebook writes entries into the notebook snapshot file of a test config.
func SeedNotebook(t *testing.T, path string, entries []entry.Entry) {
	t.Helper()
	require.NoError(t, notebook.NewYAMLRepository(path).Save(entries))
}
