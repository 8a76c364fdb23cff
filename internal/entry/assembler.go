package entry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/at-ishikawa/lingopop/internal/inference"
	"github.com/at-ishikawa/lingopop/internal/language"
)

// ErrEmptyTerm rejects a blank search input before any backend call is made.
var ErrEmptyTerm = errors.New("search term is empty")

// Assembler combines the structured text lookup and the best-effort
// illustration into one Entry. The two backend calls run concurrently.
type Assembler struct {
	client inference.Client

	// injectable for tests
	now   func() time.Time
	newID func() string
}

func NewAssembler(client inference.Client) *Assembler {
	return &Assembler{
		client: client,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

type illustrationResult struct {
	illustration inference.Illustration
	err          error
}

// Lookup performs one search. A text lookup failure fails the whole lookup;
// an illustration failure only leaves ImageURL empty. Every successful call
// mints a fresh id, so looking up the same term twice yields two entries.
func (a *Assembler) Lookup(
	ctx context.Context,
	term string,
	native language.Language,
	target language.Language,
) (Entry, error) {
	if strings.TrimSpace(term) == "" {
		return Entry{}, ErrEmptyTerm
	}

	illustrationCh := make(chan illustrationResult, 1)
	go func() {
		illustration, err := a.client.GenerateIllustration(ctx, term)
		illustrationCh <- illustrationResult{illustration: illustration, err: err}
	}()

	response, err := a.client.LookupTerm(ctx, inference.LookupTermRequest{
		Term:           term,
		NativeLanguage: native.Name,
		TargetLanguage: target.Name,
	})
	if err != nil {
		return Entry{}, fmt.Errorf("client.LookupTerm() > %w", err)
	}

	imageURL := ""
	result := <-illustrationCh
	if result.err != nil {
		slog.Default().Warn("illustration generation failed",
			"term", term,
			"error", result.err)
	} else if result.illustration.Present {
		imageURL = result.illustration.DataURI()
	}

	examples := make([]Example, 0, len(response.Examples))
	for _, example := range response.Examples {
		examples = append(examples, Example{
			Target: example.Target,
			Native: example.Native,
		})
	}

	return Entry{
		ID:         a.newID(),
		Term:       term,
		Phonetic:   response.Phonetic,
		Definition: response.Definition,
		Examples:   examples,
		UsageNote:  response.UsageNote,
		ImageURL:   imageURL,
		NativeLang: native.Code,
		TargetLang: target.Code,
		CreatedAt:  a.now().UnixMilli(),
	}, nil
}
