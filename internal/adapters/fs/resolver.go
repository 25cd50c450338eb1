package fs

import (
	"errors"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/deco/internal/core/domain"
	"go.trai.ch/deco/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.InputResolver = (*Resolver)(nil)

// Resolver implements the InputResolver interface using doublestar globs.
// A pattern naming a directory selects every accepted file below it.
type Resolver struct {
	walker *Walker
}

// NewResolver creates a new Resolver.
func NewResolver(walker *Walker) *Resolver {
	return &Resolver{walker: walker}
}

// ResolveInputs resolves the given input patterns to a sorted list of concrete file paths.
func (r *Resolver) ResolveInputs(inputs []string, root string, accept func(path string) bool) ([]string, error) {
	if len(inputs) == 0 {
		return nil, domain.ErrNoInputsSpecified
	}

	uniquePaths := make(map[string]bool)
	add := func(path string) {
		if accept == nil || accept(path) {
			uniquePaths[filepath.Clean(path)] = true
		}
	}

	for _, input := range inputs {
		path := input
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, input)
		}

		if info, err := os.Stat(path); err == nil && info.IsDir() {
			for file := range r.walker.WalkFiles(path, DefaultIgnores) {
				add(file)
			}
			continue
		}

		matches, err := doublestar.FilepathGlob(path, doublestar.WithFilesOnly())
		if err != nil {
			if errors.Is(err, doublestar.ErrBadPattern) {
				return nil, errors.Join(domain.ErrInvalidPattern, zerr.With(err, "pattern", input))
			}
			return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "path", path)
		}

		for _, match := range matches {
			add(match)
		}
	}

	if len(uniquePaths) == 0 {
		return nil, errors.Join(
			domain.ErrNoInputsMatched,
			zerr.With(zerr.New("no accepted file matched"), "patterns", inputs),
		)
	}

	result := make([]string, 0, len(uniquePaths))
	for path := range uniquePaths {
		result = append(result, path)
	}
	sort.Strings(result)

	return result, nil
}
