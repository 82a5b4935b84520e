package extractor

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/nvhoang/meeting-digest/internal/logger"
	"github.com/nvhoang/meeting-digest/internal/transcript"
)

func testFile(name, mime string) transcript.File {
	return transcript.File{ID: "id-1", Name: name, MimeType: mime}
}

func TestExtractPlainText(t *testing.T) {
	e := New(logger.New("error"))

	text, err := e.Extract(context.Background(), testFile("notes.txt", "text/plain"), []byte("Team discussed X.\r\n\r\nDecided Y.\r\n"))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	want := "Team discussed X.\n\nDecided Y."
	if text.Body != want {
		t.Errorf("Extract() = %q, want %q", text.Body, want)
	}
}

func TestExtractGoogleDocExport(t *testing.T) {
	e := New(logger.New("error"))

	// Google Docs arrive pre-exported as plain text.
	text, err := e.Extract(context.Background(),
		testFile("会議の録音 2024-05-01", "application/vnd.google-apps.document"),
		[]byte("議題: リリース計画\n決定: 来月末"),
	)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if !strings.Contains(text.Body, "リリース計画") {
		t.Errorf("Extract() = %q, want exported text preserved", text.Body)
	}
}

func TestExtractUnsupportedFormat(t *testing.T) {
	e := New(logger.New("error"))

	_, err := e.Extract(context.Background(), testFile("recording.mp4", "video/mp4"), []byte("data"))
	if !errors.Is(err, transcript.ErrUnsupportedFormat) {
		t.Errorf("Extract() error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestExtractEmptyContent(t *testing.T) {
	e := New(logger.New("error"))

	tests := []struct {
		name string
		raw  []byte
	}{
		{"empty bytes", []byte("")},
		{"whitespace only", []byte("  \n\t \r\n  ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Extract(context.Background(), testFile("blank.txt", "text/plain"), tt.raw)
			if !errors.Is(err, transcript.ErrEmptyContent) {
				t.Errorf("Extract() error = %v, want ErrEmptyContent", err)
			}
		})
	}
}

// buildDocx assembles a minimal OOXML package around the given document.xml body.
func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestExtractDocx(t *testing.T) {
	docXML := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Team discussed X.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Decided </w:t></w:r><w:r><w:rPr/><w:t>Y.</w:t></w:r></w:p>
  </w:body>
</w:document>`

	e := New(logger.New("error"))
	raw := buildDocx(t, docXML)

	text, err := e.Extract(context.Background(),
		testFile("Transcript_2024-05-01.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"),
		raw,
	)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	want := "Team discussed X.\nDecided Y."
	if text.Body != want {
		t.Errorf("Extract() = %q, want %q", text.Body, want)
	}
}

func TestExtractDocxNotAnArchive(t *testing.T) {
	e := New(logger.New("error"))

	_, err := e.Extract(context.Background(),
		testFile("broken.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"),
		[]byte("this is not a zip"),
	)
	if err == nil {
		t.Error("Extract() should fail for a corrupt docx")
	}
}

func TestExtractDocxMissingDocument(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, _ := zw.Create("word/styles.xml")
	w.Write([]byte("<styles/>"))
	zw.Close()

	e := New(logger.New("error"))
	_, err := e.Extract(context.Background(),
		testFile("odd.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"),
		buf.Bytes(),
	)
	if err == nil {
		t.Error("Extract() should fail when word/document.xml is absent")
	}
}
