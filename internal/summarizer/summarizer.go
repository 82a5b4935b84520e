package summarizer

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/nvhoang/meeting-digest/internal/transcript"
)

const digestPrompt = `You are an assistant that writes meeting digests.
Summarize the meeting transcript below into the following sections, using
these markdown headings exactly:

## Topics
- the 3-5 main points discussed

## Decisions
- decisions made in the meeting, or "None"

## Action Items
- tasks to be done, with owner and deadline when mentioned, or "None"

## Next Meeting
- the next meeting schedule if mentioned, or "TBD"

Keep the digest concise and easy to scan. Add a short explanation for any
specialist jargon.

Transcript:
---
%s
---`

const (
	truncationMarker = "\n\n[... transcript truncated ...]\n\n"
	maxBackoff       = 30 * time.Second
)

// Summarize builds the digest prompt and calls the generator, retrying
// transient failures up to the configured attempt ceiling with a doubling
// backoff. Permanent failures and empty responses fail immediately.
func (s *implSummarizer) Summarize(ctx context.Context, text transcript.Text) (transcript.Summary, error) {
	body, truncated := truncate(text.Body, s.cfg.MaxInputChars)
	if truncated {
		s.logger.Warn(ctx, "Transcript exceeds %d chars, middle dropped before summarization", s.cfg.MaxInputChars)
	}

	prompt := fmt.Sprintf(digestPrompt, body)
	delay := s.cfg.BaseDelay()

	var lastErr error
	for attempt := 1; attempt <= s.cfg.MaxAttempts; attempt++ {
		if attempt > 1 {
			s.logger.Warn(ctx, "Transient summarization failure, retrying in %s (attempt %d/%d): %v",
				delay, attempt, s.cfg.MaxAttempts, lastErr)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return transcript.Summary{}, fmt.Errorf("%w: %v", transcript.ErrSummarization, ctx.Err())
			}
			delay *= 2
			if delay > maxBackoff {
				delay = maxBackoff
			}
		}

		out, err := s.generator.Generate(ctx, s.cfg.Model, prompt)
		if err != nil {
			if !isTransient(err) {
				return transcript.Summary{}, fmt.Errorf("%w: %v", transcript.ErrSummarization, err)
			}
			lastErr = err
			continue
		}

		out = strings.TrimSpace(out)
		if out == "" {
			return transcript.Summary{}, fmt.Errorf("%w: model returned an empty response", transcript.ErrSummarization)
		}

		return transcript.Summary{
			Body:      out,
			Model:     s.cfg.Model,
			Truncated: truncated,
		}, nil
	}

	return transcript.Summary{}, fmt.Errorf("%w: %d attempts exhausted: %v",
		transcript.ErrSummarization, s.cfg.MaxAttempts, lastErr)
}

// truncate keeps the head and tail of the text within the limit, dropping
// the middle. Counts runes so multi-byte transcripts are never split
// mid-character. Deterministic for identical input.
func truncate(s string, limit int) (string, bool) {
	if limit <= 0 {
		return s, false
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s, false
	}

	marker := len([]rune(truncationMarker))
	keep := limit - marker
	if keep < 2 {
		keep = 2
	}
	head := keep * 2 / 3
	tail := keep - head

	return string(runes[:head]) + truncationMarker + string(runes[len(runes)-tail:]), true
}

// isTransient reports whether the error is worth retrying: rate limits,
// server-side failures and network timeouts. Invalid requests and
// credential or quota problems are permanent.
func isTransient(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == 429 || apiErr.Code >= 500
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	msg := err.Error()
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "RESOURCE_EXHAUSTED") ||
		strings.Contains(msg, "UNAVAILABLE")
}
