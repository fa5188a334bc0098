package testutil

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"

	"codeberg.org/snonux/tetraglot/internal/cache"
)

// NewTestLogger returns a logger that swallows all output.
func NewTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// OpenCacheStore opens a throwaway cache store under a temp directory.
func OpenCacheStore(t *testing.T) *cache.Store {
	t.Helper()

	store, err := cache.Open(filepath.Join(t.TempDir(), "cache.sqlite3"))
	if err != nil {
		t.Fatalf("Failed to open cache store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}
