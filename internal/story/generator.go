// Package story turns the saved notebook terms into a short generated
// narrative in the target language.
package story

import (
	"context"
	"fmt"

	"github.com/at-ishikawa/lingopop/internal/entry"
	"github.com/at-ishikawa/lingopop/internal/inference"
	"github.com/at-ishikawa/lingopop/internal/language"
)

// Generator is a stateless pass-through to the story synthesis call.
type Generator struct {
	client inference.Client
}

func NewGenerator(client inference.Client) *Generator {
	return &Generator{client: client}
}

// Generate produces a story using all saved terms in notebook order. An
// empty notebook yields an empty story without invoking the backend.
func (g *Generator) Generate(
	ctx context.Context,
	entries []entry.Entry,
	native language.Language,
	target language.Language,
) (string, error) {
	if len(entries) == 0 {
		return "", nil
	}

	terms := make([]string, 0, len(entries))
	for _, e := range entries {
		terms = append(terms, e.Term)
	}

	result, err := g.client.GenerateStory(ctx, inference.GenerateStoryRequest{
		Terms:          terms,
		NativeLanguage: native.Name,
		TargetLanguage: target.Name,
	})
	if err != nil {
		return "", fmt.Errorf("client.GenerateStory() > %w", err)
	}
	return result, nil
}
