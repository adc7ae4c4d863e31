package service

import (
	"context"
	"fmt"
	"io"

	"blogapp/internal/models"
	"blogapp/internal/storage"
)

type UploadService interface {
	Upload(ctx context.Context, fileName, contentType string, file io.Reader, size int64) (string, error)
}

type uploadService struct {
	storage storage.Storage
}

func NewUploadService(storage storage.Storage) UploadService {
	return &uploadService{storage: storage}
}

// Upload hands the file to the hosting collaborator and returns its public
// URL. The collaborator's failure is opaque to the caller.
func (s *uploadService) Upload(ctx context.Context, fileName, contentType string, file io.Reader, size int64) (string, error) {
	_, url, err := s.storage.UploadImage(ctx, fileName, contentType, file, size)
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrUploadFailed, err)
	}

	return url, nil
}
