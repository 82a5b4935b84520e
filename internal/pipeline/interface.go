package pipeline

import (
	"context"

	"github.com/nvhoang/meeting-digest/internal/transcript"
)

// Pipeline runs the select → extract → summarize → format → publish
// sequence exactly once.
type Pipeline interface {
	Run(ctx context.Context) Outcome
}

// Outcome is the result of one run: either a published message, or the
// stage that failed together with the classified error.
type Outcome struct {
	Stage   Stage
	Message transcript.Message
	Err     error
	Kind    string
}

// Published reports whether the run delivered its digest.
func (o Outcome) Published() bool {
	return o.Err == nil && o.Stage == StageDone
}
