package archiver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nvhoang/meeting-digest/internal/transcript"
)

// SaveTranscript writes the extracted transcript as a markdown file with a
// metadata header pointing back at the source document. Stamped with the
// source's modified time so re-runs of the same document overwrite instead
// of piling up.
func (a *implArchiver) SaveTranscript(ctx context.Context, file transcript.File, text transcript.Text) (string, error) {
	if err := os.MkdirAll(a.dir, 0755); err != nil {
		return "", fmt.Errorf("create archive dir: %w", err)
	}

	path := filepath.Join(a.dir, "transcript_"+stamp(file)+".md")

	md := fmt.Sprintf("# Meeting transcript\n\n**Source:** %s\n**Modified:** %s\n**URL:** %s\n\n## Content\n\n%s\n",
		file.Name,
		file.ModifiedTime.UTC().Format("2006-01-02 15:04:05 MST"),
		file.WebViewLink,
		text.Body,
	)

	if err := os.WriteFile(path, []byte(md), 0644); err != nil {
		return "", fmt.Errorf("write transcript archive: %w", err)
	}

	a.logger.Debug(ctx, "Archived transcript: %s", path)
	return path, nil
}

// SaveDigest renders the generated summary to a styled docx next to the
// transcript archive.
func (a *implArchiver) SaveDigest(ctx context.Context, file transcript.File, summary transcript.Summary) (string, error) {
	if err := os.MkdirAll(a.dir, 0755); err != nil {
		return "", fmt.Errorf("create archive dir: %w", err)
	}

	path := filepath.Join(a.dir, "digest_"+stamp(file)+".docx")

	if err := markdownToDocx("Meeting digest: "+file.Name, summary.Body, path); err != nil {
		return "", fmt.Errorf("write digest archive: %w", err)
	}

	a.logger.Debug(ctx, "Archived digest: %s", path)
	return path, nil
}

func stamp(file transcript.File) string {
	return file.ModifiedTime.UTC().Format("20060102_150405")
}
