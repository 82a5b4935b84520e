package summarizer

import (
	"context"

	"github.com/nvhoang/meeting-digest/internal/transcript"
)

// Summarizer produces a structured digest of an extracted transcript.
type Summarizer interface {
	Summarize(ctx context.Context, text transcript.Text) (transcript.Summary, error)
}

// Generator is the raw text-generation capability behind the Summarizer.
// The real implementation talks to Gemini; tests substitute their own.
type Generator interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
	Ping(ctx context.Context, model string) error
}
