// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/deco/internal/core/domain"
)

// Transformer is the transformation engine invoked for files that contain decorators.
//
//go:generate go run go.uber.org/mock/mockgen -source=transformer.go -destination=mocks/mock_transformer.go -package=mocks
type Transformer interface {
	// Transform returns the transformed text for content.
	//
	// The id is passed so that diagnostics can name the file; implementations
	// must not read the file themselves. opts carries the project compiler options.
	//
	// It returns an error if the engine rejects the content.
	Transform(ctx context.Context, id domain.FileID, content string, opts domain.TransformOptions) (string, error)
}
