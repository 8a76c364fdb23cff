package story

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/at-ishikawa/lingopop/internal/pdf"
)

// Writer saves generated stories as markdown files, optionally also as PDF.
type Writer struct {
	outputDir string

	// injectable for tests
	now func() time.Time
}

func NewWriter(outputDir string) *Writer {
	return &Writer{
		outputDir: outputDir,
		now:       time.Now,
	}
}

// Write saves the story as a timestamped markdown file and returns its path.
// When generatePDF is set, a PDF is rendered next to it.
func (w *Writer) Write(story string, generatePDF bool) (string, error) {
	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", w.outputDir, err)
	}

	name := fmt.Sprintf("story-%s.md", w.now().Format("20060102-150405"))
	path := filepath.Join(w.outputDir, name)

	contents := fmt.Sprintf("# Story\n\n%s\n", story)
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		return "", fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}

	if generatePDF {
		if _, err := pdf.ConvertMarkdownToPDF(path); err != nil {
			return "", fmt.Errorf("pdf.ConvertMarkdownToPDF(%s) > %w", path, err)
		}
	}
	return path, nil
}
