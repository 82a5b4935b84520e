package formatter

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/nvhoang/meeting-digest/internal/transcript"
)

func testSummary(body string) transcript.Summary {
	return transcript.Summary{Body: body, Model: "gemini-2.5-flash"}
}

func testFile() transcript.File {
	return transcript.File{
		ID:           "id-1",
		Name:         "Transcript_2024-05-01.docx",
		MimeType:     "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		ModifiedTime: time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC),
		WebViewLink:  "https://docs.example.com/d/abc123",
	}
}

func TestFormatBasics(t *testing.T) {
	f := New()

	msg, err := f.Format(testSummary("Topic: X; Decision: Y"), testFile())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	if !strings.Contains(msg.Title, "Transcript_2024-05-01.docx") {
		t.Errorf("Title %q should reference the file name", msg.Title)
	}
	if msg.Body != "Topic: X; Decision: Y" {
		t.Errorf("Body = %q, unsectioned summaries pass verbatim", msg.Body)
	}
	if msg.SourceURL != "https://docs.example.com/d/abc123" {
		t.Errorf("SourceURL = %q", msg.SourceURL)
	}
	if !msg.Timestamp.Equal(testFile().ModifiedTime) {
		t.Errorf("Timestamp = %v, want the file's modified time", msg.Timestamp)
	}
	if msg.Fallback == "" {
		t.Error("Fallback must be populated for notification previews")
	}
}

func TestFormatMissingURLIsHardError(t *testing.T) {
	f := New()
	file := testFile()
	file.WebViewLink = ""

	_, err := f.Format(testSummary("digest"), file)
	if !errors.Is(err, transcript.ErrInvalidMessage) {
		t.Errorf("Format() error = %v, want ErrInvalidMessage", err)
	}
}

func TestFormatEmptySummaryIsHardError(t *testing.T) {
	f := New()

	_, err := f.Format(testSummary("   "), testFile())
	if !errors.Is(err, transcript.ErrInvalidMessage) {
		t.Errorf("Format() error = %v, want ErrInvalidMessage", err)
	}
}

func TestFormatSectionedSummary(t *testing.T) {
	f := New()
	summary := testSummary(`## Topics
- Release planning for **v2**
- Bug triage

## Decisions
- Ship at the end of next month

## Action Items
- None`)

	msg, err := f.Format(summary, testFile())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	if !strings.Contains(msg.Body, "*Topics*") {
		t.Errorf("Body %q should carry bold section titles", msg.Body)
	}
	if strings.Contains(msg.Body, "## ") {
		t.Errorf("Body %q should not leak raw markdown headings", msg.Body)
	}
	if !strings.Contains(msg.Body, "• Release planning for *v2*") {
		t.Errorf("Body %q should rewrite bullets and bold for Slack", msg.Body)
	}
}

func TestFormatTruncationSurfaced(t *testing.T) {
	f := New()
	summary := testSummary("digest")
	summary.Truncated = true

	msg, err := f.Format(summary, testFile())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(msg.Body, "truncated") {
		t.Errorf("Body %q should tell the reader the transcript was truncated", msg.Body)
	}
}

func TestFormatIdempotent(t *testing.T) {
	f := New()
	summary := testSummary("## Topics\n- One\n- Two")
	file := testFile()

	first, err := f.Format(summary, file)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	second, err := f.Format(summary, file)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	if first != second {
		t.Errorf("Format() is not idempotent:\n%+v\n%+v", first, second)
	}
}
