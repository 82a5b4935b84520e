package notifier

import (
	"strings"
	"testing"
	"time"

	"github.com/slack-go/slack"

	"github.com/nvhoang/meeting-digest/internal/transcript"
)

func testMessage() transcript.Message {
	return transcript.Message{
		Title:     "📝 Meeting digest: Transcript_2024-05-01.docx",
		Body:      "*Topics*\n• Release planning",
		SourceURL: "https://docs.example.com/d/abc123",
		Timestamp: time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC),
		Fallback:  "📝 Meeting digest ready",
	}
}

func TestBuildBlocksLayout(t *testing.T) {
	blocks := buildBlocks(testMessage())

	if len(blocks) != 6 {
		t.Fatalf("buildBlocks() returned %d blocks, want 6", len(blocks))
	}

	header, ok := blocks[0].(*slack.HeaderBlock)
	if !ok {
		t.Fatalf("block 0 is %T, want header", blocks[0])
	}
	if header.Text.Text != testMessage().Title {
		t.Errorf("header text = %q", header.Text.Text)
	}

	if _, ok := blocks[1].(*slack.DividerBlock); !ok {
		t.Errorf("block 1 is %T, want divider", blocks[1])
	}

	body, ok := blocks[2].(*slack.SectionBlock)
	if !ok {
		t.Fatalf("block 2 is %T, want section", blocks[2])
	}
	if body.Text.Text != testMessage().Body {
		t.Errorf("body section = %q", body.Text.Text)
	}

	source, ok := blocks[4].(*slack.SectionBlock)
	if !ok {
		t.Fatalf("block 4 is %T, want section", blocks[4])
	}
	if !strings.Contains(source.Text.Text, testMessage().SourceURL) {
		t.Errorf("source section %q should link the document", source.Text.Text)
	}

	if _, ok := blocks[5].(*slack.ContextBlock); !ok {
		t.Errorf("block 5 is %T, want context footer", blocks[5])
	}
}

func TestBuildBlocksFooterUsesSourceTime(t *testing.T) {
	blocks := buildBlocks(testMessage())

	footer := blocks[5].(*slack.ContextBlock)
	if len(footer.ContextElements.Elements) != 1 {
		t.Fatalf("footer has %d elements, want 1", len(footer.ContextElements.Elements))
	}
	text, ok := footer.ContextElements.Elements[0].(*slack.TextBlockObject)
	if !ok {
		t.Fatalf("footer element is %T, want text", footer.ContextElements.Elements[0])
	}
	if !strings.Contains(text.Text, "2024-05-01 09:30") {
		t.Errorf("footer %q should stamp the source's modified time", text.Text)
	}
}

func TestBuildBlocksDeterministic(t *testing.T) {
	a := buildBlocks(testMessage())
	b := buildBlocks(testMessage())

	if len(a) != len(b) {
		t.Fatal("buildBlocks() length differs between identical calls")
	}
	aBody := a[2].(*slack.SectionBlock).Text.Text
	bBody := b[2].(*slack.SectionBlock).Text.Text
	if aBody != bBody {
		t.Error("buildBlocks() must be deterministic")
	}
}
