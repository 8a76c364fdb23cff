package story

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_Write(t *testing.T) {
	t.Run("writes a timestamped markdown file", func(t *testing.T) {
		outputDir := filepath.Join(t.TempDir(), "stories")
		writer := NewWriter(outputDir)
		writer.now = func() time.Time {
			return time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
		}

		path, err := writer.Write("Érase una vez un gato.", false)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(outputDir, "story-20250615-103000.md"), path)

		contents, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "# Story\n\nÉrase una vez un gato.\n", string(contents))
	})

	t.Run("successive stories get distinct files", func(t *testing.T) {
		outputDir := t.TempDir()
		writer := NewWriter(outputDir)
		timestamps := []time.Time{
			time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC),
			time.Date(2025, 6, 15, 10, 31, 0, 0, time.UTC),
		}
		writer.now = func() time.Time {
			next := timestamps[0]
			timestamps = timestamps[1:]
			return next
		}

		first, err := writer.Write("first", false)
		require.NoError(t, err)
		second, err := writer.Write("second", false)
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})
}
