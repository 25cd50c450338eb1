package fs

import (
	"context"
	"os"

	"go.trai.ch/deco/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileReader = (*Reader)(nil)

// Reader implements ports.FileReader on the local file system.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadFile returns the content of path.
func (r *Reader) ReadFile(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to read file"), "path", path)
	}

	return string(data), nil
}
