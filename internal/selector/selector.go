package selector

import (
	"context"
	"fmt"
	"sort"

	"github.com/nvhoang/meeting-digest/internal/transcript"
)

// Select lists the folder, keeps only files with an allowed mime type, and
// returns the most recently modified one. The store's ordering is not
// trusted; candidates are re-sorted locally so the tie-break rule holds:
// equal timestamps resolve to the lexicographically greatest name, on the
// assumption that higher sequence or date suffixes sort last.
func (s *implSelector) Select(ctx context.Context, folderID string) (transcript.File, error) {
	files, err := s.store.List(ctx, folderID)
	if err != nil {
		return transcript.File{}, fmt.Errorf("select transcript: %w", err)
	}

	var candidates []transcript.File
	for _, f := range files {
		if s.allowed(f.MimeType) {
			candidates = append(candidates, f)
		} else {
			s.logger.Debug(ctx, "Ignoring %s: mime type %s not allowed", f.Name, f.MimeType)
		}
	}

	if len(candidates) == 0 {
		return transcript.File{}, fmt.Errorf("%w: folder %s has no matching transcript", transcript.ErrNotFound, folderID)
	}

	sort.Slice(candidates, func(i, j int) bool {
		if !candidates[i].ModifiedTime.Equal(candidates[j].ModifiedTime) {
			return candidates[i].ModifiedTime.After(candidates[j].ModifiedTime)
		}
		return candidates[i].Name > candidates[j].Name
	})

	chosen := candidates[0]
	s.logger.Info(ctx, "Selected transcript: %s (modified %s)", chosen.Name, chosen.ModifiedTime.Format("2006-01-02 15:04"))
	return chosen, nil
}

func (s *implSelector) allowed(mimeType string) bool {
	for _, m := range s.mimeTypes {
		if m == mimeType {
			return true
		}
	}
	return false
}
