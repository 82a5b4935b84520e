package selector

import (
	"github.com/nvhoang/meeting-digest/internal/drivestore"
	"github.com/nvhoang/meeting-digest/internal/logger"
)

type implSelector struct {
	store     drivestore.Store
	mimeTypes []string
	logger    logger.Logger
}

// New creates a Selector over the given store. mimeTypes is the allowlist of
// acceptable content types; anything else in the folder is ignored.
func New(store drivestore.Store, mimeTypes []string, log logger.Logger) Selector {
	return &implSelector{
		store:     store,
		mimeTypes: mimeTypes,
		logger:    log,
	}
}
