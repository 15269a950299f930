package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"property-service/internal/logger"
	"property-service/internal/repository"
)

var ErrImageNotFound = errors.New("image not found")

const keyPrefix = "properties/"

// BlobStore keeps image bytes under a key.
type BlobStore interface {
	Put(ctx context.Context, key, contentType string, content io.Reader) error
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)
}

type ImageService struct {
	blobs   BlobStore
	baseURL string
	now     func() time.Time
}

// NewImageService returns a service whose URLs are baseURL + "/" + key.
func NewImageService(blobs BlobStore, baseURL string) *ImageService {
	return &ImageService{
		blobs:   blobs,
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
	}
}

// WithClock replaces the time source used for keys.
func (s *ImageService) WithClock(now func() time.Time) *ImageService {
	s.now = now
	return s
}

// Upload stores content under a fresh key and returns its public URL.
func (s *ImageService) Upload(ctx context.Context, filename, contentType string, content io.Reader) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	key := s.imageKey(filename)
	if err := s.blobs.Put(ctx, key, contentType, content); err != nil {
		return "", fmt.Errorf("ImageService.Upload: %w", err)
	}
	logger.FromContext(ctx).Info("image stored", "key", key, "content_type", contentType)
	return s.baseURL + "/" + key, nil
}

// Open returns the stored image and its content type.
func (s *ImageService) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	rc, contentType, err := s.blobs.Open(ctx, strings.TrimPrefix(key, "/"))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, "", ErrImageNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("ImageService.Open: %w", err)
	}
	return rc, contentType, nil
}

// imageKey is properties/<unix millis>-<base name>.
func (s *ImageService) imageKey(filename string) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == "/" {
		name = "image"
	}
	return fmt.Sprintf("%s%d-%s", keyPrefix, s.now().UnixMilli(), name)
}
