package extractor

import (
	"context"

	"github.com/nvhoang/meeting-digest/internal/transcript"
)

// Extractor turns a downloaded file's raw bytes into plain text.
type Extractor interface {
	Extract(ctx context.Context, file transcript.File, raw []byte) (transcript.Text, error)
}
