package archiver

import (
	"github.com/nvhoang/meeting-digest/internal/logger"
)

type implArchiver struct {
	dir    string
	logger logger.Logger
}

// New creates an Archiver writing into dir.
func New(dir string, log logger.Logger) Archiver {
	return &implArchiver{
		dir:    dir,
		logger: log,
	}
}
