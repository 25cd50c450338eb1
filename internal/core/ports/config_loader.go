package ports

import "go.trai.ch/deco/internal/core/domain"

// ConfigLoader defines the interface for loading the run configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load resolves the configuration for the given working directory.
	// A missing configuration file is not an error; defaults are returned instead.
	Load(cwd string) (domain.Options, error)

	// EmitsDecoratorMetadata reports whether the tsconfig at path enables
	// compilerOptions.emitDecoratorMetadata, following its extends chain.
	EmitsDecoratorMetadata(path string) (bool, error)

	// CompilerOptions returns the compilerOptions of the tsconfig at path merged over
	// its extends chain, as a JSON object. A missing tsconfig yields an empty string.
	CompilerOptions(path string) (string, error)
}
