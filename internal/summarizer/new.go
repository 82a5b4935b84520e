package summarizer

import (
	"github.com/nvhoang/meeting-digest/internal/config"
	"github.com/nvhoang/meeting-digest/internal/logger"
)

type implSummarizer struct {
	generator Generator
	cfg       config.GeminiConfig
	logger    logger.Logger
}

// New creates a Summarizer using the given Generator. Retry ceiling, input
// limit and backoff come from the Gemini config section.
func New(gen Generator, cfg config.GeminiConfig, log logger.Logger) Summarizer {
	return &implSummarizer{
		generator: gen,
		cfg:       cfg,
		logger:    log,
	}
}
