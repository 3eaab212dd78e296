package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocalStorage(t *testing.T) *LocalStorage {
	t.Helper()
	s, err := NewLocalStorage(Config{
		BasePath: t.TempDir(),
		BaseURL:  "http://localhost:8080/files/",
	})
	require.NoError(t, err)
	return s
}

func TestLocalStorageRoundTrip(t *testing.T) {
	s := newTestLocalStorage(t)
	ctx := context.Background()

	err := s.Save(ctx, "forms/acc-1/doc.pdf", strings.NewReader("payload"), "application/pdf")
	require.NoError(t, err)

	rc, err := s.Get(ctx, "forms/acc-1/doc.pdf")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))

	require.NoError(t, s.Delete(ctx, "forms/acc-1/doc.pdf"))
	_, err = s.Get(ctx, "forms/acc-1/doc.pdf")
	assert.Error(t, err)
}

func TestLocalStorageRejectsTraversal(t *testing.T) {
	base := t.TempDir()
	s, err := NewLocalStorage(Config{BasePath: base, BaseURL: "http://localhost/files"})
	require.NoError(t, err)

	secret := filepath.Join(filepath.Dir(base), "secret.txt")
	require.NoError(t, os.WriteFile(secret, []byte("keep out"), 0o600))

	// A traversal key must stay confined to the base path.
	err = s.Save(context.Background(), "../secret.txt", strings.NewReader("overwritten"), "text/plain")
	require.NoError(t, err)

	data, err := os.ReadFile(secret)
	require.NoError(t, err)
	assert.Equal(t, "keep out", string(data))
}

func TestLocalStorageSignedURL(t *testing.T) {
	s := newTestLocalStorage(t)

	url, err := s.GetSignedURL(context.Background(), "forms/acc-1/doc.pdf", 15*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/files/forms/acc-1/doc.pdf", url)
}

func TestNewStorageUnknownType(t *testing.T) {
	_, err := NewStorage(Config{Type: "ftp"})
	assert.Error(t, err)
}
