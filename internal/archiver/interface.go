package archiver

import (
	"context"

	"github.com/nvhoang/meeting-digest/internal/transcript"
)

// Archiver keeps local copies of run artifacts for later inspection.
// Best-effort only: callers treat failures as warnings, never run failures.
type Archiver interface {
	SaveTranscript(ctx context.Context, file transcript.File, text transcript.Text) (string, error)
	SaveDigest(ctx context.Context, file transcript.File, summary transcript.Summary) (string, error)
}
