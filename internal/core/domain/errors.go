package domain

import "go.trai.ch/zerr"

var (
	// ErrReadFailed is returned when a source file's content cannot be read.
	ErrReadFailed = zerr.New("failed to read source file")

	// ErrTransformFailed is returned when the transformation engine rejects a file.
	ErrTransformFailed = zerr.New("transformation failed")

	// ErrNoInputsSpecified is returned when a command is run without any file patterns.
	ErrNoInputsSpecified = zerr.New("no inputs specified")

	// ErrNoInputsMatched is returned when none of the given patterns match a supported file.
	ErrNoInputsMatched = zerr.New("no inputs matched")

	// ErrInvalidPattern is returned when a glob pattern cannot be parsed.
	ErrInvalidPattern = zerr.New("invalid glob pattern")

	// ErrInvalidExtensionFilter is returned when the configured extension set is unknown.
	ErrInvalidExtensionFilter = zerr.New("invalid extension filter, expected 'ts' or 'tsx'")

	// ErrInvalidEngine is returned when the configured transformation engine is unknown.
	ErrInvalidEngine = zerr.New("invalid engine, expected 'esbuild' or 'command'")

	// ErrMissingEngineCommand is returned when the command engine is selected without a command.
	ErrMissingEngineCommand = zerr.New("command engine requires a command")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrTsconfigReadFailed is returned when a tsconfig file in the extends chain cannot be read.
	ErrTsconfigReadFailed = zerr.New("failed to read tsconfig")

	// ErrTsconfigCycle is returned when a tsconfig extends chain refers back to itself.
	ErrTsconfigCycle = zerr.New("tsconfig extends cycle detected")

	// ErrOutputWriteFailed is returned when a transformed file cannot be written to the output directory.
	ErrOutputWriteFailed = zerr.New("failed to write output file")

	// ErrBuildFailed is returned when the bundler reports errors.
	ErrBuildFailed = zerr.New("build failed")

	// ErrScanFailed is returned when at least one file failed to process during a scan.
	ErrScanFailed = zerr.New("scan failed")

	// ErrWatcherFailed is returned when the file watcher cannot be started.
	ErrWatcherFailed = zerr.New("failed to start file watcher")
)
