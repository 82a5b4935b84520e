package formatter

import (
	"github.com/nvhoang/meeting-digest/internal/transcript"
)

// Formatter assembles the final digest message. Pure: no I/O, no clock;
// identical inputs always yield byte-identical messages.
type Formatter interface {
	Format(summary transcript.Summary, file transcript.File) (transcript.Message, error)
}
