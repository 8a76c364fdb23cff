package notebook_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/lingopop/internal/entry"
	"github.com/at-ishikawa/lingopop/internal/notebook"
	"github.com/at-ishikawa/lingopop/internal/testutil"
)

func TestYAMLRepository(t *testing.T) {
	t.Run("missing file loads an empty notebook", func(t *testing.T) {
		repo := notebook.NewYAMLRepository(filepath.Join(t.TempDir(), "notebook.yml"))
		entries, err := repo.Load()
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("empty file loads an empty notebook", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "notebook.yml")
		require.NoError(t, os.WriteFile(path, nil, 0644))

		entries, err := notebook.NewYAMLRepository(path).Load()
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "notebook.yml")
		repo := notebook.NewYAMLRepository(path)

		saved := []entry.Entry{
			testutil.NewEntry("adios"),
			testutil.NewEntry("hola", testutil.WithImageURL("data:image/png;base64,AQID")),
		}
		require.NoError(t, repo.Save(saved))

		loaded, err := repo.Load()
		require.NoError(t, err)
		assert.Equal(t, saved, loaded)
	})

	t.Run("save overwrites the previous snapshot", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "notebook.yml")
		repo := notebook.NewYAMLRepository(path)

		require.NoError(t, repo.Save([]entry.Entry{
			testutil.NewEntry("hola"),
			testutil.NewEntry("adios"),
		}))
		require.NoError(t, repo.Save([]entry.Entry{
			testutil.NewEntry("gracias"),
		}))

		loaded, err := repo.Load()
		require.NoError(t, err)
		require.Len(t, loaded, 1)
		assert.Equal(t, "gracias", loaded[0].Term)
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "notebook.yml")
		require.NoError(t, os.WriteFile(path, []byte("{invalid: yaml: ["), 0644))

		_, err := notebook.NewYAMLRepository(path).Load()
		assert.Error(t, err)
	})
}
