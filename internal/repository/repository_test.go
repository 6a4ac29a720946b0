package repository

import (
	"io"
	"log/slog"
	"testing"

	"github.com/aaamo/storefront-api/internal/kvstore"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newFileStore opens a FileStore over a per-test directory, mirroring the
// device-local layout used in production.
func newFileStore(t *testing.T, dir string) *kvstore.FileStore {
	t.Helper()
	store, err := kvstore.NewFileStore(dir)
	if err != nil {
		t.Fatalf("open file store: %v", err)
	}
	return store
}
