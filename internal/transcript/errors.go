package transcript

import "errors"

// Error kinds produced by the pipeline components. Components wrap these
// with fmt.Errorf("...: %w", ...) so the orchestrator can classify any
// failure with errors.Is without depending on component internals.
var (
	ErrAccessDenied      = errors.New("access denied")
	ErrNotFound          = errors.New("no transcript found")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrEmptyContent      = errors.New("empty content")
	ErrSummarization     = errors.New("summarization failed")
	ErrInvalidMessage    = errors.New("invalid message")
	ErrPublish           = errors.New("publish failed")
)

// Kind returns a short name for the error's classification, or "internal"
// for errors that carry no known sentinel.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrAccessDenied):
		return "access_denied"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrUnsupportedFormat):
		return "unsupported_format"
	case errors.Is(err, ErrEmptyContent):
		return "empty_content"
	case errors.Is(err, ErrSummarization):
		return "summarization"
	case errors.Is(err, ErrInvalidMessage):
		return "invalid_message"
	case errors.Is(err, ErrPublish):
		return "publish"
	default:
		return "internal"
	}
}
