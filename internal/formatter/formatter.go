package formatter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nvhoang/meeting-digest/internal/transcript"
)

var (
	reHeading = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBold    = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet  = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
)

const truncationNote = "_Note: the transcript was truncated before summarization._"

// Format builds the digest message from the summary and the source file's
// metadata. A file without a web link cannot be published: the whole point
// of the digest is the way back to the original document.
func (f *implFormatter) Format(summary transcript.Summary, file transcript.File) (transcript.Message, error) {
	if strings.TrimSpace(file.WebViewLink) == "" {
		return transcript.Message{}, fmt.Errorf("%w: %s has no web view link", transcript.ErrInvalidMessage, file.Name)
	}
	if strings.TrimSpace(summary.Body) == "" {
		return transcript.Message{}, fmt.Errorf("%w: summary for %s is empty", transcript.ErrInvalidMessage, file.Name)
	}

	body := renderBody(summary.Body)
	if summary.Truncated {
		body += "\n\n" + truncationNote
	}

	return transcript.Message{
		Title:     "📝 Meeting digest: " + file.Name,
		Body:      body,
		SourceURL: file.WebViewLink,
		Timestamp: file.ModifiedTime,
		Fallback:  "📝 Meeting digest ready: " + file.Name,
	}, nil
}

// renderBody converts the model's markdown into Slack mrkdwn. Summaries
// that follow the sectioned structure get bold section titles and clean
// bullets; anything else passes through verbatim.
func renderBody(md string) string {
	if !hasSections(md) {
		return strings.TrimSpace(md)
	}

	lines := strings.Split(md, "\n")
	var out []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "---" {
			continue
		}
		if m := reHeading.FindStringSubmatch(trimmed); m != nil {
			out = append(out, "*"+cleanInline(m[2])+"*")
			continue
		}
		if m := reBullet.FindStringSubmatch(trimmed); m != nil {
			out = append(out, "• "+inlineToMrkdwn(m[1]))
			continue
		}
		out = append(out, inlineToMrkdwn(line))
	}

	return strings.TrimSpace(strings.Join(out, "\n"))
}

func hasSections(md string) bool {
	for _, line := range strings.Split(md, "\n") {
		if reHeading.MatchString(strings.TrimSpace(line)) {
			return true
		}
	}
	return false
}

// inlineToMrkdwn rewrites **bold** as Slack's *bold*.
func inlineToMrkdwn(s string) string {
	return reBold.ReplaceAllString(s, "*$1*")
}

func cleanInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
