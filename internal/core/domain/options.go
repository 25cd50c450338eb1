package domain

import (
	"math"
	"path/filepath"
	"strings"
)

// ExtensionFilter selects which source files are candidates for the pipeline.
type ExtensionFilter string

const (
	// ExtensionsTS selects .ts files only.
	ExtensionsTS ExtensionFilter = "ts"
	// ExtensionsTSX selects .ts and .tsx files.
	ExtensionsTSX ExtensionFilter = "tsx"
)

// Valid reports whether f is a known extension set.
func (f ExtensionFilter) Valid() bool {
	return f == ExtensionsTS || f == ExtensionsTSX
}

// Pattern returns the path filter as a Go regular expression.
func (f ExtensionFilter) Pattern() string {
	if f == ExtensionsTSX {
		return `\.tsx?$`
	}
	return `\.ts$`
}

// Matches reports whether path has an extension included in the set.
func (f ExtensionFilter) Matches(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ts":
		return true
	case ".tsx":
		return f == ExtensionsTSX
	default:
		return false
	}
}

// EngineKind selects the transformation engine implementation.
type EngineKind string

const (
	// EngineEsbuild transforms in-process with the esbuild TypeScript loader.
	EngineEsbuild EngineKind = "esbuild"
	// EngineCommand pipes the file through an external command.
	EngineCommand EngineKind = "command"
)

// DefaultCacheCapacityMB is the default result cache budget in megabytes.
const DefaultCacheCapacityMB = 128

// bytesPerMB matches the decimal megabyte used for the capacity option.
const bytesPerMB = 1_000_000

// Options is the configuration record resolved once per run.
type Options struct {
	// CachingEnabled turns the result cache on.
	CachingEnabled bool
	// CacheCapacityMB is the result cache budget in megabytes.
	CacheCapacityMB float64
	// ForceScan bypasses the emitDecoratorMetadata precondition.
	ForceScan bool
	// Extensions selects the candidate file set.
	Extensions ExtensionFilter
	// Tsconfig is the path of the tsconfig.json whose compiler options drive the precondition and engine.
	Tsconfig string
	// Engine selects the transformation engine.
	Engine EngineKind
	// EngineCommand is the argv of the external engine when Engine is EngineCommand.
	EngineCommand []string
	// Parallelism bounds how many files are processed at once. Zero means runtime.NumCPU().
	Parallelism int
}

// DefaultOptions returns the options used when no configuration file is present.
func DefaultOptions() Options {
	return Options{
		CachingEnabled:  false,
		CacheCapacityMB: DefaultCacheCapacityMB,
		Extensions:      ExtensionsTS,
		Tsconfig:        "tsconfig.json",
		Engine:          EngineEsbuild,
	}
}

// CapacityBytes converts the configured megabytes to a byte budget.
// Non-finite or negative values yield a zero budget, which retains nothing.
func (o Options) CapacityBytes() int64 {
	mb := o.CacheCapacityMB
	if math.IsNaN(mb) || mb <= 0 {
		return 0
	}
	if math.IsInf(mb, 1) || mb > math.MaxInt64/bytesPerMB {
		return math.MaxInt64
	}
	return int64(mb * bytesPerMB)
}

// TransformOptions is handed to the transformation engine with every file.
type TransformOptions struct {
	// CompilerOptions is the merged compilerOptions object of the tsconfig extends chain,
	// encoded as JSON. Empty when no tsconfig is present.
	CompilerOptions string
}
