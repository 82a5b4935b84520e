package extractor

import (
	"context"
	"fmt"
	"strings"

	"github.com/nvhoang/meeting-digest/internal/transcript"
)

const (
	mimeGoogleDoc = "application/vnd.google-apps.document"
	mimeDocx      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimePlain     = "text/plain"
	mimeMarkdown  = "text/markdown"
)

// Extract converts the file's bytes to plain text based on its mime type.
// Google Docs arrive here already exported as plain text by the store.
func (e *implExtractor) Extract(ctx context.Context, file transcript.File, raw []byte) (transcript.Text, error) {
	var body string
	var err error

	switch file.MimeType {
	case mimeGoogleDoc, mimePlain, mimeMarkdown:
		body = string(raw)
	case mimeDocx:
		body, err = docxText(raw)
		if err != nil {
			return transcript.Text{}, fmt.Errorf("extract docx %s: %w", file.Name, err)
		}
	default:
		return transcript.Text{}, fmt.Errorf("%w: %s (%s)", transcript.ErrUnsupportedFormat, file.MimeType, file.Name)
	}

	body = normalize(body)
	if body == "" {
		return transcript.Text{}, fmt.Errorf("%w: %s yielded no text", transcript.ErrEmptyContent, file.Name)
	}

	e.logger.Debug(ctx, "Extracted %d chars from %s", len(body), file.Name)
	return transcript.Text{Body: body}, nil
}

// normalize unifies line endings, trims trailing space per line, and
// collapses runs of blank lines to a single paragraph break.
func normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	lines := strings.Split(s, "\n")
	var out []string
	blank := false
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if strings.TrimSpace(line) == "" {
			blank = true
			continue
		}
		if blank && len(out) > 0 {
			out = append(out, "")
		}
		blank = false
		out = append(out, line)
	}

	return strings.Join(out, "\n")
}
