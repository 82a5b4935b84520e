package formatter

type implFormatter struct{}

// New creates a Formatter.
func New() Formatter {
	return &implFormatter{}
}
