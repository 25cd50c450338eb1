package pipeline

import (
	"context"
	"errors"

	"go.trai.ch/deco/internal/core/domain"
	"go.trai.ch/deco/internal/core/ports"
	"go.trai.ch/zerr"
)

// Loader is the host file-load hook: it reads a file and runs it through the Orchestrator.
type Loader struct {
	reader       ports.FileReader
	orchestrator *Orchestrator
}

// NewLoader creates a new Loader.
func NewLoader(reader ports.FileReader, orchestrator *Orchestrator) *Loader {
	return &Loader{reader: reader, orchestrator: orchestrator}
}

// Load reads path and processes its content. A read error yields a failure result
// and leaves the cache untouched.
func (l *Loader) Load(ctx context.Context, path string, cachingEnabled bool) domain.Result {
	content, err := l.reader.ReadFile(ctx, path)
	if err != nil {
		return domain.Failure(errors.Join(
			domain.ErrReadFailed,
			zerr.With(zerr.Wrap(err, "source unavailable"), "path", path),
		))
	}

	return l.orchestrator.Process(ctx, domain.NewFileID(path), content, cachingEnabled)
}

// Orchestrator returns the orchestrator used by the loader.
func (l *Loader) Orchestrator() *Orchestrator {
	return l.orchestrator
}
