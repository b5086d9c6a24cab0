// Package storage stores uploaded portfolio assets (theme background images)
// behind a pluggable backend: local disk for development, S3 in production.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/folioforge/engine/pkg/config"
	"github.com/google/uuid"
)

// Storage writes uploaded assets and returns a URL the public page can
// reference.
type Storage interface {
	// Upload stores the file under a generated key and returns its public URL.
	Upload(ctx context.Context, filename, contentType string, data io.Reader) (string, error)

	// Delete removes a previously uploaded asset by key.
	Delete(ctx context.Context, key string) error
}

// New builds the backend selected by configuration.
func New(cfg *config.Config) (Storage, error) {
	switch cfg.StorageType {
	case "local":
		return NewLocalStorage(cfg.StorageLocalPath, cfg.StorageBaseURL)
	case "s3":
		return NewS3Storage(S3Config{
			Region:    cfg.AWSRegion,
			Bucket:    cfg.AWSS3Bucket,
			AccessKey: cfg.AWSAccessKey,
			SecretKey: cfg.AWSSecretKey,
		})
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.StorageType)
	}
}

// objectKey namespaces uploads by a random id so concurrent uploads of the
// same filename never collide.
func objectKey(filename string) string {
	return path.Join(uuid.NewString(), path.Base(filename))
}
