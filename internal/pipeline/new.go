package pipeline

import (
	"time"

	"github.com/nvhoang/meeting-digest/internal/archiver"
	"github.com/nvhoang/meeting-digest/internal/config"
	"github.com/nvhoang/meeting-digest/internal/drivestore"
	"github.com/nvhoang/meeting-digest/internal/extractor"
	"github.com/nvhoang/meeting-digest/internal/formatter"
	"github.com/nvhoang/meeting-digest/internal/logger"
	"github.com/nvhoang/meeting-digest/internal/notifier"
	"github.com/nvhoang/meeting-digest/internal/selector"
	"github.com/nvhoang/meeting-digest/internal/summarizer"
)

// Deps bundles the collaborators the pipeline sequences.
type Deps struct {
	Store      drivestore.Store
	Selector   selector.Selector
	Extractor  extractor.Extractor
	Summarizer summarizer.Summarizer
	Formatter  formatter.Formatter
	Publisher  notifier.Publisher
	Archiver   archiver.Archiver
}

type implPipeline struct {
	deps     Deps
	folderID string
	timeout  time.Duration
	logger   logger.Logger
}

// New creates a Pipeline for the configured folder. The timeout bounds each
// external call except summarization, which owns its own retry window.
func New(cfg *config.Config, deps Deps, log logger.Logger) Pipeline {
	return &implPipeline{
		deps:     deps,
		folderID: cfg.Drive.FolderID,
		timeout:  cfg.Timeout(),
		logger:   log,
	}
}
