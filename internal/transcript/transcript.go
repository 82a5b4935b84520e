package transcript

import "time"

// File is a transcript document discovered in the source folder.
// Immutable once fetched; metadata travels with the run so the final
// message can link back to the original document.
type File struct {
	ID           string
	Name         string
	MimeType     string
	ModifiedTime time.Time
	WebViewLink  string
}

// Text is the plain-text body extracted from a File.
type Text struct {
	Body string
}

// Summary is the generated digest of a transcript.
type Summary struct {
	Body      string
	Model     string
	Truncated bool
}

// Message is the final payload ready for publication.
type Message struct {
	Title     string
	Body      string
	SourceURL string
	Timestamp time.Time
	Fallback  string
}
