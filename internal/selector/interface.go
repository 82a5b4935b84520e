package selector

import (
	"context"

	"github.com/nvhoang/meeting-digest/internal/transcript"
)

// Selector picks the single transcript the run should summarize.
type Selector interface {
	Select(ctx context.Context, folderID string) (transcript.File, error)
}
