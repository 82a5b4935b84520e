package drivestore

import (
	"context"
	"fmt"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/nvhoang/meeting-digest/internal/logger"
)

type implStore struct {
	svc          *drive.Service
	nameKeywords []string
	logger       logger.Logger
}

// New creates a Store backed by the Google Drive v3 API, authenticated with
// a service-account credentials file and a read-only scope.
func New(ctx context.Context, credentialsPath string, nameKeywords []string, log logger.Logger) (Store, error) {
	svc, err := drive.NewService(ctx,
		option.WithCredentialsFile(credentialsPath),
		option.WithScopes(drive.DriveReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}

	return &implStore{
		svc:          svc,
		nameKeywords: nameKeywords,
		logger:       log,
	}, nil
}
