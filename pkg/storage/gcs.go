package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/FDead21/afc-web/pkg/envconfig"
	"github.com/FDead21/afc-web/pkg/logger"
)

// Store is the object storage boundary: upload a file, get its public
// URL back. Backed by a GCS bucket in production.
type Store interface {
	Upload(ctx context.Context, objectPath, contentType string, r io.Reader) error
	PublicURL(objectPath string) string
}

type GCSStore struct {
	client        *storage.Client
	bucket        string
	publicBaseURL string
	logger        *logger.Logger
}

func NewGCSStore(ctx context.Context, config envconfig.StorageConfig, log *logger.Logger) (*GCSStore, error) {
	var opts []option.ClientOption
	if config.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(config.CredentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %v", err)
	}

	log.Info("Object storage client ready", "bucket", config.Bucket)

	return &GCSStore{
		client:        client,
		bucket:        config.Bucket,
		publicBaseURL: strings.TrimSuffix(config.PublicBaseURL, "/"),
		logger:        log.WithComponent("storage"),
	}, nil
}

// Upload writes the reader's contents to the bucket under objectPath
func (s *GCSStore) Upload(ctx context.Context, objectPath, contentType string, r io.Reader) error {
	s.logger.Debug("Uploading object", "path", objectPath, "content_type", contentType)

	obj := s.client.Bucket(s.bucket).Object(objectPath)
	writer := obj.NewWriter(ctx)
	if contentType != "" {
		writer.ContentType = contentType
	}

	if _, err := io.Copy(writer, r); err != nil {
		writer.Close()
		s.logger.Error("Failed to write object", "error", err, "path", objectPath)
		return fmt.Errorf("failed to upload %s: %v", objectPath, err)
	}

	if err := writer.Close(); err != nil {
		s.logger.Error("Failed to finalize object", "error", err, "path", objectPath)
		return fmt.Errorf("failed to finalize upload %s: %v", objectPath, err)
	}

	s.logger.Info("Object uploaded", "path", objectPath)
	return nil
}

// PublicURL returns the public link for an uploaded object
func (s *GCSStore) PublicURL(objectPath string) string {
	return s.publicBaseURL + "/" + strings.TrimPrefix(objectPath, "/")
}

// Close releases the underlying client
func (s *GCSStore) Close() error {
	return s.client.Close()
}
