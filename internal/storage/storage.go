package storage

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Storage abstracts where intake-form payloads live.
type Storage interface {
	// Save stores a file under the given key.
	Save(ctx context.Context, key string, reader io.Reader, contentType string) error

	// Get retrieves the file stored under key.
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes the file stored under key.
	Delete(ctx context.Context, key string) error

	// GetSignedURL returns a temporary download URL for the file.
	GetSignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// Config holds storage configuration.
type Config struct {
	Type      string // local, s3
	BasePath  string // for local storage
	BaseURL   string // public URL base for local storage
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
	Endpoint  string // for S3-compatible endpoints (minio etc.)
}

// NewStorage creates a storage backend from configuration.
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
