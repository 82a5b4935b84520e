package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nvhoang/meeting-digest/internal/archiver"
	"github.com/nvhoang/meeting-digest/internal/config"
	"github.com/nvhoang/meeting-digest/internal/drivestore"
	"github.com/nvhoang/meeting-digest/internal/extractor"
	"github.com/nvhoang/meeting-digest/internal/formatter"
	"github.com/nvhoang/meeting-digest/internal/logger"
	"github.com/nvhoang/meeting-digest/internal/notifier"
	"github.com/nvhoang/meeting-digest/internal/pipeline"
	"github.com/nvhoang/meeting-digest/internal/selector"
	"github.com/nvhoang/meeting-digest/internal/summarizer"
)

const (
	exitOK          = 0
	exitFailed      = 1
	exitInterrupted = 2
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	selfTest := flag.Bool("selftest", false, "ping each collaborator and exit without running the pipeline")
	flag.Parse()

	os.Exit(run(*configPath, *selfTest))
}

func run(configPath string, selfTest bool) int {
	ctx := context.Background()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return exitFailed
	}

	log, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		return exitFailed
	}
	defer logger.Close(log)

	log.Info(ctx, "========================================")
	log.Info(ctx, "Meeting Digest Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Folder: %s", cfg.Drive.FolderID)
	log.Info(ctx, "Model: %s", cfg.Gemini.Model)
	log.Info(ctx, "Channel: %s", cfg.Slack.ChannelID)
	log.Info(ctx, "Configuration loaded successfully")

	store, err := drivestore.New(ctx, cfg.Drive.CredentialsPath, cfg.Drive.NameKeywords, log)
	if err != nil {
		log.Error(ctx, "Failed to create drive store: %v", err)
		return exitFailed
	}

	gen := summarizer.NewGeminiGenerator(cfg.Gemini.APIKeys, log)
	pub := notifier.New(cfg.Slack.BotToken, cfg.Slack.ChannelID, log)

	if selfTest {
		return runSelfTest(ctx, cfg, store, gen, pub, log)
	}

	p := pipeline.New(cfg, pipeline.Deps{
		Store:      store,
		Selector:   selector.New(store, cfg.Drive.MimeTypes, log),
		Extractor:  extractor.New(log),
		Summarizer: summarizer.New(gen, cfg.Gemini, log),
		Formatter:  formatter.New(),
		Publisher:  pub,
		Archiver:   archiver.New(cfg.Paths.Archive, log),
	}, log)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	outcomeChan := make(chan pipeline.Outcome, 1)
	go func() {
		outcomeChan <- p.Run(ctx)
	}()

	select {
	case sig := <-sigChan:
		log.Warn(ctx, "Received %s, aborting run", sig)
		cancel()
		<-outcomeChan
		return exitInterrupted

	case outcome := <-outcomeChan:
		if !outcome.Published() {
			log.Error(ctx, "Run failed at stage %s (%s)", outcome.Stage, outcome.Kind)
			return exitFailed
		}
		log.Info(ctx, "Run completed: digest published to %s", cfg.Slack.ChannelID)
		return exitOK
	}
}

// runSelfTest exercises each collaborator's connectivity in isolation so a
// broken credential is diagnosed without spending a full pipeline run.
func runSelfTest(ctx context.Context, cfg *config.Config, store drivestore.Store, gen summarizer.Generator, pub notifier.Publisher, log logger.Logger) int {
	log.Info(ctx, "Running collaborator self-test...")

	checks := []struct {
		name string
		ping func(context.Context) error
	}{
		{"drive", store.Ping},
		{"gemini", func(ctx context.Context) error { return gen.Ping(ctx, cfg.Gemini.Model) }},
		{"slack", pub.Ping},
	}

	failed := 0
	for _, c := range checks {
		checkCtx, cancel := context.WithTimeout(ctx, cfg.Timeout())
		err := c.ping(checkCtx)
		cancel()

		if err != nil {
			log.Error(ctx, "Self-test %s: FAILED: %v", c.name, err)
			failed++
		} else {
			log.Info(ctx, "Self-test %s: ok", c.name)
		}
	}

	if failed > 0 {
		log.Error(ctx, "Self-test finished: %d of %d checks failed", failed, len(checks))
		return exitFailed
	}
	log.Info(ctx, "Self-test finished: all checks passed")
	return exitOK
}

func newLogger(cfg *config.Config) (logger.Logger, error) {
	if cfg.Logging.File != "" {
		return logger.NewWithFile(cfg.Logging.Level, cfg.Logging.File)
	}
	return logger.New(cfg.Logging.Level), nil
}
