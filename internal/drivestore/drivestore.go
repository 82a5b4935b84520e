package drivestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"google.golang.org/api/googleapi"

	"github.com/nvhoang/meeting-digest/internal/transcript"
)

const (
	mimeGoogleDoc = "application/vnd.google-apps.document"

	listPageSize = 100
)

// List returns the transcript candidates in the folder, newest first as
// reported by Drive. Names are matched against the configured keywords in
// the query itself so unrelated documents never leave the API.
func (s *implStore) List(ctx context.Context, folderID string) ([]transcript.File, error) {
	res, err := s.svc.Files.List().
		Q(s.buildQuery(folderID)).
		OrderBy("modifiedTime desc").
		Fields("files(id, name, mimeType, modifiedTime, webViewLink)").
		PageSize(listPageSize).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("list files in folder %s: %w", folderID, classify(err))
	}

	files := make([]transcript.File, 0, len(res.Files))
	for _, f := range res.Files {
		modified, err := time.Parse(time.RFC3339, f.ModifiedTime)
		if err != nil {
			s.logger.Warn(ctx, "Skipping %s: unparseable modifiedTime %q", f.Name, f.ModifiedTime)
			continue
		}
		files = append(files, transcript.File{
			ID:           f.Id,
			Name:         f.Name,
			MimeType:     f.MimeType,
			ModifiedTime: modified,
			WebViewLink:  f.WebViewLink,
		})
	}

	return files, nil
}

// Download fetches the file's content. Google Docs have no raw media, so
// they are exported as plain text; everything else is fetched verbatim.
func (s *implStore) Download(ctx context.Context, file transcript.File) ([]byte, error) {
	resp, err := s.download(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", file.Name, classify(err))
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read content of %s: %w", file.Name, err)
	}

	s.logger.Debug(ctx, "Downloaded %s (%d bytes)", file.Name, len(data))
	return data, nil
}

// Ping verifies the credentials can reach the Drive API at all.
func (s *implStore) Ping(ctx context.Context) error {
	if _, err := s.svc.About.Get().Fields("user").Context(ctx).Do(); err != nil {
		return fmt.Errorf("drive ping: %w", classify(err))
	}
	return nil
}

func (s *implStore) download(ctx context.Context, file transcript.File) (*http.Response, error) {
	if file.MimeType == mimeGoogleDoc {
		return s.svc.Files.Export(file.ID, "text/plain").Context(ctx).Download()
	}
	return s.svc.Files.Get(file.ID).Context(ctx).Download()
}

func (s *implStore) buildQuery(folderID string) string {
	var nameClauses []string
	for _, kw := range s.nameKeywords {
		escaped := strings.ReplaceAll(kw, `'`, `\'`)
		nameClauses = append(nameClauses, fmt.Sprintf("name contains '%s'", escaped))
	}

	query := fmt.Sprintf("'%s' in parents and trashed = false", folderID)
	if len(nameClauses) > 0 {
		query += " and (" + strings.Join(nameClauses, " or ") + ")"
	}
	return query
}

// classify maps Drive API status codes onto the pipeline's error kinds.
func classify(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case 401, 403:
			return fmt.Errorf("%w: %v", transcript.ErrAccessDenied, err)
		case 404:
			return fmt.Errorf("%w: %v", transcript.ErrNotFound, err)
		}
	}
	return err
}
