package fs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/deco/internal/core/domain"
	"go.trai.ch/zerr"
)

// Writer writes transformed files below an output directory, mirroring their
// location relative to a root.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// OutputPath returns where path is written below outDir.
// Files outside root keep only their base name.
func (w *Writer) OutputPath(outDir, root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		rel = filepath.Base(path)
	}
	return filepath.Join(outDir, rel)
}

// Write stores content for path below outDir and returns the written path.
func (w *Writer) Write(outDir, root, path, content string) (string, error) {
	target := w.OutputPath(outDir, root, path)

	if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
		return "", errors.Join(domain.ErrOutputWriteFailed, zerr.With(err, "path", target))
	}

	if err := os.WriteFile(target, []byte(content), 0o600); err != nil {
		return "", errors.Join(domain.ErrOutputWriteFailed, zerr.With(err, "path", target))
	}

	return target, nil
}
