package pdf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertMarkdownToPDF(t *testing.T) {
	t.Run("invalid extension", func(t *testing.T) {
		_, err := ConvertMarkdownToPDF("story.txt")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "input file must have .md extension")
	})

	t.Run("file not found", func(t *testing.T) {
		_, err := ConvertMarkdownToPDF("nonexistent.md")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "os.ReadFile")
	})

	t.Run("successful conversion", func(t *testing.T) {
		tmpDir := t.TempDir()
		mdPath := filepath.Join(tmpDir, "story.md")
		require.NoError(t, os.WriteFile(mdPath, []byte("# Story\n\nÉrase una vez un gato.\n"), 0644))

		pdfPath, err := ConvertMarkdownToPDF(mdPath)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(tmpDir, "story.pdf"), pdfPath)

		_, err = os.Stat(pdfPath)
		assert.NoError(t, err)
	})
}
