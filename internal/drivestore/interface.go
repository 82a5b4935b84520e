package drivestore

import (
	"context"

	"github.com/nvhoang/meeting-digest/internal/transcript"
)

// Store is the narrow capability the pipeline needs from the file store:
// list candidate transcripts in a folder and fetch one file's content.
type Store interface {
	List(ctx context.Context, folderID string) ([]transcript.File, error)
	Download(ctx context.Context, file transcript.File) ([]byte, error)
	Ping(ctx context.Context) error
}
