// Package pipeline decides, per source file, whether a transformation is needed and
// reuses the previous answer when the file content has not changed.
package pipeline

import (
	"context"
	"errors"

	"go.trai.ch/deco/internal/core/domain"
	"go.trai.ch/deco/internal/core/ports"
	"go.trai.ch/zerr"
)

// Orchestrator runs the fingerprint, cache, scan and transform steps for one file.
type Orchestrator struct {
	fingerprinter ports.Fingerprinter
	scanner       ports.ConstructScanner
	transformer   ports.Transformer
	cache         ports.ResultCache

	transformOptions domain.TransformOptions
	locks            *keyedLocks
}

// NewOrchestrator creates a new Orchestrator.
func NewOrchestrator(
	fingerprinter ports.Fingerprinter,
	scanner ports.ConstructScanner,
	transformer ports.Transformer,
	cache ports.ResultCache,
) *Orchestrator {
	return &Orchestrator{
		fingerprinter: fingerprinter,
		scanner:       scanner,
		transformer:   transformer,
		cache:         cache,
		locks:         newKeyedLocks(defaultStripes),
	}
}

// WithTransformOptions sets the options passed to the transformer for every file.
func (o *Orchestrator) WithTransformOptions(opts domain.TransformOptions) *Orchestrator {
	o.transformOptions = opts
	return o
}

// Process returns what the host should do with content of the file identified by id.
//
// When cachingEnabled is set, a record whose digest matches the current content
// answers without scanning or transforming, and the fresh outcome is stored
// otherwise. Failures are never stored. Calls for the same id are serialized.
func (o *Orchestrator) Process(
	ctx context.Context,
	id domain.FileID,
	content string,
	cachingEnabled bool,
) domain.Result {
	unlock := o.locks.lock(id.String())
	defer unlock()

	var digest domain.Digest
	if cachingEnabled {
		digest = o.fingerprinter.Fingerprint([]byte(content))
		if record, ok := o.cache.Lookup(id, digest); ok {
			if vertex, found := ports.VertexFromContext(ctx); found {
				vertex.Cached()
			}
			result := domain.ResultFromOutcome(record.Outcome)
			result.Cached = true
			return result
		}
	}

	outcome, err := o.decide(ctx, id, content)
	if err != nil {
		return domain.Failure(err)
	}

	if cachingEnabled {
		o.cache.Store(id, digest, outcome)
	}

	return domain.ResultFromOutcome(outcome)
}

func (o *Orchestrator) decide(ctx context.Context, id domain.FileID, content string) (domain.Outcome, error) {
	if !o.scanner.HasConstruct(content) {
		return domain.Unneeded(), nil
	}

	text, err := o.transformer.Transform(ctx, id, content, o.transformOptions)
	if err != nil {
		return domain.Outcome{}, errors.Join(
			domain.ErrTransformFailed,
			zerr.With(zerr.Wrap(err, "engine rejected source"), "path", id.String()),
		)
	}

	return domain.Transformed(text), nil
}

// Stats returns the usage of the underlying result cache.
func (o *Orchestrator) Stats() domain.CacheStats {
	return o.cache.Stats()
}

// Configure resets the result cache to the budget derived from opts.
func (o *Orchestrator) Configure(opts domain.Options) {
	o.cache.Configure(opts.CapacityBytes())
}
