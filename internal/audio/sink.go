package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/at-ishikawa/lingopop/internal/inference"
)

// ErrAbsentSpeech reports that there is nothing to play for a text.
var ErrAbsentSpeech = errors.New("no audio available")

// Sink receives synthesized speech for playback. The default sink writes the
// audio to a file; a platform playback device would implement the same
// interface.
type Sink interface {
	Play(text string, speech inference.Speech) (string, error)
}

// FileSink writes speech audio into an output directory, one file per text.
type FileSink struct {
	outputDir string
}

func NewFileSink(outputDir string) *FileSink {
	return &FileSink{outputDir: outputDir}
}

// Play writes the audio file and returns its path.
func (s *FileSink) Play(text string, speech inference.Speech) (string, error) {
	if !speech.Present {
		return "", ErrAbsentSpeech
	}

	if err := os.MkdirAll(s.outputDir, 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", s.outputDir, err)
	}

	path := filepath.Join(s.outputDir, slugify(text)+"."+speech.Format)
	if err := os.WriteFile(path, speech.Data, 0644); err != nil {
		return "", fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}
	return path, nil
}

// slugify reduces a text to a short, filesystem-safe file name.
func slugify(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune('-')
		}
	}
	slug := b.String()
	if slug == "" {
		slug = "speech"
	}
	const maxLength = 40
	if runes := []rune(slug); len(runes) > maxLength {
		slug = string(runes[:maxLength])
	}
	return slug
}
