// Package audio provides per-session speech caching and the playback sink
// seam. Speech is fetched lazily per distinct text and never persisted.
package audio

import (
	"context"
	"log/slog"
	"sync"

	"github.com/at-ishikawa/lingopop/internal/inference"
)

// Cache memoizes speech synthesis results for the lifetime of the session.
// Each distinct text invokes the backend at most once; a failed synthesis is
// cached as an absent Speech so it is not retried automatically.
type Cache struct {
	client inference.Client

	mu       sync.Mutex
	speeches map[string]inference.Speech
}

func NewCache(client inference.Client) *Cache {
	return &Cache{
		client:   client,
		speeches: map[string]inference.Speech{},
	}
}

// Get returns the speech for a text, synthesizing it on first use. Failures
// degrade to an absent result, never an error.
func (c *Cache) Get(ctx context.Context, text string) inference.Speech {
	c.mu.Lock()
	defer c.mu.Unlock()

	if speech, ok := c.speeches[text]; ok {
		return speech
	}

	speech, err := c.client.GenerateSpeech(ctx, text)
	if err != nil {
		slog.Default().Warn("speech generation failed",
			"text", text,
			"error", err)
		speech = inference.Speech{}
	}
	c.speeches[text] = speech
	return speech
}
