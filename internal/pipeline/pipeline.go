package pipeline

import (
	"context"
	"time"

	"github.com/nvhoang/meeting-digest/internal/transcript"
)

// Run executes the whole pipeline once. Any stage error ends the run at
// that stage; nothing is published on a partial failure, and exactly one
// publish attempt is ever made.
func (p *implPipeline) Run(ctx context.Context) Outcome {
	startTime := time.Now()

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting meeting digest run (folder: %s)", p.folderID)
	p.logger.Info(ctx, "========================================")

	// Stage 1: pick the transcript.
	file, err := p.selectFile(ctx)
	if err != nil {
		return p.fail(ctx, StageSelecting, err)
	}

	// Stage 2: download and extract its text.
	text, err := p.extract(ctx, file)
	if err != nil {
		return p.fail(ctx, StageExtracting, err)
	}

	if _, err := p.deps.Archiver.SaveTranscript(ctx, file, text); err != nil {
		p.logger.Warn(ctx, "Failed to archive transcript: %v", err)
	}

	// Stage 3: summarize. Retries live inside the summarizer.
	summary, err := p.deps.Summarizer.Summarize(ctx, text)
	if err != nil {
		return p.fail(ctx, StageSummarizing, err)
	}

	// Stage 4: build the message.
	msg, err := p.deps.Formatter.Format(summary, file)
	if err != nil {
		return p.fail(ctx, StageFormatting, err)
	}

	// Stage 5: publish. One attempt; delivery retries belong to the
	// publisher if it wants them, never here.
	if err := p.publish(ctx, msg); err != nil {
		return p.fail(ctx, StagePublishing, err)
	}

	if _, err := p.deps.Archiver.SaveDigest(ctx, file, summary); err != nil {
		p.logger.Warn(ctx, "Failed to archive digest: %v", err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Digest published successfully!")
	p.logger.Info(ctx, "Source: %s", file.Name)
	p.logger.Info(ctx, "Model: %s", summary.Model)
	p.logger.Info(ctx, "Run time: %s", time.Since(startTime))
	p.logger.Info(ctx, "========================================")

	return Outcome{Stage: StageDone, Message: msg}
}

func (p *implPipeline) selectFile(ctx context.Context) (transcript.File, error) {
	callCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	return p.deps.Selector.Select(callCtx, p.folderID)
}

func (p *implPipeline) extract(ctx context.Context, file transcript.File) (transcript.Text, error) {
	callCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	raw, err := p.deps.Store.Download(callCtx, file)
	if err != nil {
		return transcript.Text{}, err
	}
	return p.deps.Extractor.Extract(callCtx, file, raw)
}

func (p *implPipeline) publish(ctx context.Context, msg transcript.Message) error {
	callCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	return p.deps.Publisher.Publish(callCtx, msg)
}

// fail classifies and logs a stage error, then ends the run. Every failure
// surfaces the stage name and the underlying cause; nothing is swallowed.
func (p *implPipeline) fail(ctx context.Context, stage Stage, err error) Outcome {
	kind := transcript.Kind(err)
	p.logger.Error(ctx, "Run failed at stage %s (%s): %v", stage, kind, err)
	return Outcome{Stage: stage, Err: err, Kind: kind}
}
