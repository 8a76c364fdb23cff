package inference

import (
	"context"
	"encoding/base64"
)

//go:generate mockgen -source=interface.go -destination=../mocks/inference/mock_client.go -package=mock_inference

// Client interface defines the generative backend operations the application
// depends on. LookupTerm and GenerateStory failures propagate to the caller;
// illustrations and speech are best-effort and absence is expressed through
// the Present field of their result types.
type Client interface {
	LookupTerm(ctx context.Context, params LookupTermRequest) (LookupTermResponse, error)
	GenerateIllustration(ctx context.Context, term string) (Illustration, error)
	GenerateSpeech(ctx context.Context, text string) (Speech, error)
	GenerateStory(ctx context.Context, params GenerateStoryRequest) (string, error)
}

// LookupTermRequest holds parameters for a structured dictionary lookup.
type LookupTermRequest struct {
	// Term is the user's input, passed through verbatim.
	Term string `json:"term"`
	// NativeLanguage and TargetLanguage are display names ("English"), not codes.
	NativeLanguage string `json:"native_language"`
	TargetLanguage string `json:"target_language"`
}

// Example is one example sentence pair of a lookup reply.
type Example struct {
	Target string `json:"target"`
	Native string `json:"native"`
}

// LookupTermResponse is the fixed-shape reply of a structured lookup.
type LookupTermResponse struct {
	Definition string    `json:"definition"`
	Phonetic   string    `json:"phonetic"`
	Examples   []Example `json:"examples"`
	UsageNote  string    `json:"usageNote"`
}

// Illustration is a best-effort image generation result. Present is false
// when generation failed or the reply carried no image.
type Illustration struct {
	Present  bool
	MIMEType string
	Data     []byte
}

// DataURI renders the illustration as an embeddable data URI, or an empty
// string when the illustration is absent.
func (i Illustration) DataURI() string {
	if !i.Present {
		return ""
	}
	return "data:" + i.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(i.Data)
}

// Speech is a best-effort text-to-speech result.
type Speech struct {
	Present bool
	// Format is the audio container format, e.g. "wav".
	Format string
	Data   []byte
}

// GenerateStoryRequest holds parameters for narrative generation over saved terms.
type GenerateStoryRequest struct {
	Terms          []string `json:"terms"`
	NativeLanguage string   `json:"native_language"`
	TargetLanguage string   `json:"target_language"`
}
