package ports

import "context"

// FileReader reads source files for the pipeline host.
//
//go:generate go run go.uber.org/mock/mockgen -source=reader.go -destination=mocks/mock_reader.go -package=mocks
type FileReader interface {
	// ReadFile returns the text content of the file at path.
	ReadFile(ctx context.Context, path string) (string, error)
}

// InputResolver expands user-supplied patterns into concrete source files.
type InputResolver interface {
	// ResolveInputs resolves the given glob patterns relative to root and returns the
	// sorted, de-duplicated list of files whose extension is accepted by accept.
	ResolveInputs(patterns []string, root string, accept func(path string) bool) ([]string, error)
}
