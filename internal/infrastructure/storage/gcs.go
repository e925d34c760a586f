package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/storage"

	"github.com/rafabene/threaddate-backend/internal/domain/ports"
)

const gcsUploadTimeout = 50 * time.Second

// GCSStorage implementa ports.ObjectStorage sobre o Google Cloud Storage
type GCSStorage struct {
	client        *storage.Client
	bucket        string
	publicBaseURL string
	logger        ports.Logger
}

// NewGCSStorage cria o cliente GCS usando as Application Default Credentials
func NewGCSStorage(ctx context.Context, bucket, publicBaseURL string, logger ports.Logger) (*GCSStorage, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	if publicBaseURL == "" {
		publicBaseURL = fmt.Sprintf("https://storage.googleapis.com/%s", bucket)
	}

	return &GCSStorage{
		client:        client,
		bucket:        bucket,
		publicBaseURL: publicBaseURL,
		logger:        logger,
	}, nil
}

func (s *GCSStorage) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	key, err := CleanKey(key)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, gcsUploadTimeout)
	defer cancel()

	wc := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	wc.ContentType = contentType
	wc.CacheControl = "public, max-age=31536000, immutable"

	if _, err := wc.Write(data); err != nil {
		_ = wc.Close()
		return "", fmt.Errorf("gcs write %s: %w", key, err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("gcs close %s: %w", key, err)
	}

	s.logger.Debug("object uploaded", "bucket", s.bucket, "key", key, "bytes", len(data))
	return publicURL(s.publicBaseURL, key), nil
}

func (s *GCSStorage) Delete(ctx context.Context, key string) error {
	key, err := CleanKey(key)
	if err != nil {
		return err
	}

	err = s.client.Bucket(s.bucket).Object(key).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("gcs delete %s: %w", key, err)
	}
	return nil
}

// Close libera o cliente GCS
func (s *GCSStorage) Close() error {
	return s.client.Close()
}
