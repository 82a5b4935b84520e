package notifier

import (
	"context"

	"github.com/nvhoang/meeting-digest/internal/transcript"
)

// Publisher delivers a digest message to the destination channel.
type Publisher interface {
	Publish(ctx context.Context, msg transcript.Message) error
	Ping(ctx context.Context) error
}
