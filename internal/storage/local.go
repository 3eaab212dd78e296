package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LocalStorage stores files on the local filesystem. Meant for development
// and tests; signed URLs are plain public URLs.
type LocalStorage struct {
	basePath string
	baseURL  string
}

func NewLocalStorage(cfg Config) (*LocalStorage, error) {
	if err := os.MkdirAll(cfg.BasePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}
	return &LocalStorage{
		basePath: cfg.BasePath,
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
	}, nil
}

// fullPath resolves a key inside basePath, rejecting traversal.
func (s *LocalStorage) fullPath(key string) (string, error) {
	cleaned := filepath.Clean("/" + key)
	return filepath.Join(s.basePath, cleaned), nil
}

func (s *LocalStorage) Save(ctx context.Context, key string, reader io.Reader, contentType string) error {
	path, err := s.fullPath(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, reader); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

func (s *LocalStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	path, err := s.fullPath(key)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return f, nil
}

func (s *LocalStorage) Delete(ctx context.Context, key string) error {
	path, err := s.fullPath(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}

func (s *LocalStorage) GetSignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	return fmt.Sprintf("%s/%s", s.baseURL, key), nil
}
