package store

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Dir stores documents as files under a local directory. It reports no
// links, so documents written locally carry no QR code.
type Dir struct {
	Path string
}

// Save writes the document to <dir>/<key>, creating the directory if
// needed.
func (d Dir) Save(_ context.Context, key string, body *bytes.Buffer) error {
	if err := os.MkdirAll(d.Path, 0o755); err != nil {
		return fmt.Errorf("store: create %s: %w", d.Path, err)
	}
	path := filepath.Join(d.Path, key)
	if err := os.WriteFile(path, body.Bytes(), 0o644); err != nil {
		return fmt.Errorf("store: write %s: %w", path, err)
	}
	return nil
}

// Link returns "" so callers skip link-dependent furniture.
func (d Dir) Link(string) string {
	return ""
}
