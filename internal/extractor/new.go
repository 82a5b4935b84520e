package extractor

import (
	"github.com/nvhoang/meeting-digest/internal/logger"
)

type implExtractor struct {
	logger logger.Logger
}

// New creates an Extractor.
func New(log logger.Logger) Extractor {
	return &implExtractor{logger: log}
}
