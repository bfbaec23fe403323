package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *LocalStorage {
	s, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)
	return s
}

func TestLocalStorageUploadAndDownload(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	path, err := s.Upload(ctx, strings.NewReader("selfie-bytes"), "selfies/emp-1/2024-03-11.jpg", "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "selfies/emp-1/2024-03-11.jpg", path)

	exists, err := s.Exists(ctx, path)
	require.NoError(t, err)
	assert.True(t, exists)

	rc, err := s.Download(ctx, path)
	require.NoError(t, err)
	defer rc.Close()

	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "selfie-bytes", string(content))
}

func TestLocalStorageRejectsTraversal(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	_, err := s.Upload(ctx, strings.NewReader("x"), "../outside.txt", "text/plain")
	assert.Error(t, err)

	_, err = s.Upload(ctx, strings.NewReader("x"), "/etc/passwd", "text/plain")
	assert.Error(t, err)

	// A dotted segment inside the tree is fine once cleaned.
	path, err := s.Upload(ctx, strings.NewReader("x"), "a/../b.txt", "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "b.txt", path)
}

func TestLocalStorageDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	_, err := s.Upload(ctx, strings.NewReader("x"), "logos/logo.png", "image/png")
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "logos/logo.png"))
	require.NoError(t, s.Delete(ctx, "logos/logo.png"))

	exists, err := s.Exists(ctx, "logos/logo.png")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalStorageGetURL(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	url, err := s.GetURL(ctx, "selfies/emp-1/a.jpg", 0)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/selfies/emp-1/a.jpg", url)
}
