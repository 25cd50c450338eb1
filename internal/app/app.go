// Package app implements the application layer for deco.
package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"go.trai.ch/deco/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/deco/internal/adapters/esbuild" //nolint:depguard // Wired in app layer
	"go.trai.ch/deco/internal/core/domain"
	"go.trai.ch/deco/internal/core/ports"
	"go.trai.ch/deco/internal/engine/pipeline"
	"go.trai.ch/deco/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// EngineFactory builds the external command engine for an argv.
type EngineFactory func(argv []string) (ports.Transformer, error)

// OutputWriter writes replaced sources below an output directory.
type OutputWriter interface {
	Write(outDir, root, path, content string) (string, error)
}

// Bundler runs an esbuild build.
type Bundler interface {
	Build(ctx context.Context, req esbuild.BundleRequest) (esbuild.BundleReport, error)
}

// logConfigurer is implemented by loggers whose format can change at runtime.
type logConfigurer interface {
	SetJSON(enable bool)
	SetVerbose(enable bool)
}

// fileReporter is implemented by loggers that print per-file status lines.
type fileReporter interface {
	FileStatus(path string, status domain.FileStatus)
}

// App represents the main application logic.
type App struct {
	configLoader  ports.ConfigLoader
	logger        ports.Logger
	resolver      ports.InputResolver
	reader        ports.FileReader
	writer        OutputWriter
	fingerprinter ports.Fingerprinter
	scanner       ports.ConstructScanner
	cache         ports.ResultCache
	esbuild       ports.Transformer
	commandEngine EngineFactory
	bundler       Bundler
	scheduler     *scheduler.Scheduler
	telemetry     ports.Telemetry
	watcher       ports.Watcher

	debounceWindow time.Duration
}

// Dependencies groups the collaborators of an App.
type Dependencies struct {
	ConfigLoader  ports.ConfigLoader
	Logger        ports.Logger
	Resolver      ports.InputResolver
	Reader        ports.FileReader
	Writer        OutputWriter
	Fingerprinter ports.Fingerprinter
	Scanner       ports.ConstructScanner
	Cache         ports.ResultCache
	Esbuild       ports.Transformer
	CommandEngine EngineFactory
	Bundler       Bundler
	Scheduler     *scheduler.Scheduler
	Telemetry     ports.Telemetry
	Watcher       ports.Watcher
}

// New creates a new App instance.
func New(deps Dependencies) *App {
	return &App{
		configLoader:   deps.ConfigLoader,
		logger:         deps.Logger,
		resolver:       deps.Resolver,
		reader:         deps.Reader,
		writer:         deps.Writer,
		fingerprinter:  deps.Fingerprinter,
		scanner:        deps.Scanner,
		cache:          deps.Cache,
		esbuild:        deps.Esbuild,
		commandEngine:  deps.CommandEngine,
		bundler:        deps.Bundler,
		scheduler:      deps.Scheduler,
		telemetry:      deps.Telemetry,
		watcher:        deps.Watcher,
		debounceWindow: defaultDebounceWindow,
	}
}

// WithDebounceWindow sets how long watch mode waits for changes to settle.
func (a *App) WithDebounceWindow(d time.Duration) *App {
	a.debounceWindow = d
	return a
}

// RunOptions carries the command line overrides shared by every command.
type RunOptions struct {
	// Dir is the working directory used for configuration discovery and relative patterns.
	Dir string
	// NoCache disables the result cache.
	NoCache bool
	// Cache enables the result cache.
	Cache bool
	// CacheSize overrides the cache budget, in megabytes or as a byte size such as "64MB".
	CacheSize string
	// Force scans even when emitDecoratorMetadata is off.
	Force bool
	// TSX includes .tsx files.
	TSX bool
	// Tsconfig overrides the tsconfig path.
	Tsconfig string
	// Parallelism overrides how many files are processed at once.
	Parallelism int
	// JSON switches the logger to JSON output.
	JSON bool
	// Verbose enables debug logging.
	Verbose bool
}

func (o RunOptions) dir() string {
	if o.Dir == "" {
		return "."
	}
	return o.Dir
}

// session is one configured pass of the pipeline.
type session struct {
	opts    domain.Options
	loader  *pipeline.Loader
	enabled bool
}

// resolveOptions loads the configuration and applies the command line overrides.
func (a *App) resolveOptions(run RunOptions) (domain.Options, error) {
	if lc, ok := a.logger.(logConfigurer); ok {
		lc.SetJSON(run.JSON)
		lc.SetVerbose(run.Verbose)
	}

	opts, err := a.configLoader.Load(run.dir())
	if err != nil {
		return domain.Options{}, zerr.Wrap(err, "failed to load configuration")
	}

	switch {
	case run.NoCache:
		opts.CachingEnabled = false
	case run.Cache:
		opts.CachingEnabled = true
	}

	if run.CacheSize != "" {
		mb, err := config.ParseCacheSize(run.CacheSize)
		if err != nil {
			return domain.Options{}, err
		}
		opts.CacheCapacityMB = mb
	}

	if run.Force {
		opts.ForceScan = true
	}
	if run.TSX {
		opts.Extensions = domain.ExtensionsTSX
	}
	if run.Tsconfig != "" {
		opts.Tsconfig = run.Tsconfig
		if !filepath.IsAbs(opts.Tsconfig) {
			opts.Tsconfig = filepath.Join(run.dir(), opts.Tsconfig)
		}
	}
	if run.Parallelism > 0 {
		opts.Parallelism = run.Parallelism
	}

	if err := config.ValidateEngine(opts); err != nil {
		return domain.Options{}, err
	}

	return opts, nil
}

// newSession configures the cache, selects the engine and evaluates the scan precondition.
func (a *App) newSession(opts domain.Options) (*session, error) {
	transformer, err := a.transformer(opts)
	if err != nil {
		return nil, err
	}

	orchestrator := pipeline.NewOrchestrator(a.fingerprinter, a.scanner, transformer, a.cache)
	orchestrator.Configure(opts)

	enabled, err := a.precondition(opts)
	if err != nil {
		return nil, err
	}

	if enabled {
		compilerOptions, err := a.configLoader.CompilerOptions(opts.Tsconfig)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to read compiler options"), "path", opts.Tsconfig)
		}
		orchestrator.WithTransformOptions(domain.TransformOptions{CompilerOptions: compilerOptions})
	}

	a.logger.Debug(fmt.Sprintf("engine %s, caching %t, cache budget %s",
		opts.Engine, opts.CachingEnabled, humanize.Bytes(uint64(opts.CapacityBytes()))))

	return &session{
		opts:    opts,
		loader:  pipeline.NewLoader(a.reader, orchestrator),
		enabled: enabled,
	}, nil
}

func (a *App) transformer(opts domain.Options) (ports.Transformer, error) {
	if opts.Engine == domain.EngineCommand {
		return a.commandEngine(opts.EngineCommand)
	}
	return a.esbuild, nil
}

func (a *App) reportFile(path string, status domain.FileStatus) {
	if fr, ok := a.logger.(fileReporter); ok {
		fr.FileStatus(path, status)
		return
	}
	a.logger.Debug(fmt.Sprintf("%s: %s", path, status))
}

// precondition reports whether files should be scanned at all.
func (a *App) precondition(opts domain.Options) (bool, error) {
	if opts.ForceScan {
		return true, nil
	}

	emits, err := a.configLoader.EmitsDecoratorMetadata(opts.Tsconfig)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to inspect tsconfig"), "path", opts.Tsconfig)
	}

	if !emits {
		a.logger.Info(fmt.Sprintf(
			"emitDecoratorMetadata is not enabled in %s, leaving files untouched (use --force to scan anyway)",
			opts.Tsconfig,
		))
	}

	return emits, nil
}

// logStats logs the result cache usage.
func (a *App) logStats() {
	s := a.cache.Stats()
	a.logger.Info(fmt.Sprintf(
		"cache: %d entries, %s of %s, %d hits, %d misses, %d evictions",
		s.Entries,
		humanize.Bytes(uint64(max(s.Bytes, 0))),
		humanize.Bytes(uint64(max(s.CapacityBytes, 0))),
		s.Hits,
		s.Misses,
		s.Evictions,
	))
}

// joinFailure classifies err under sentinel unless it is nil.
func joinFailure(sentinel, err error) error {
	if err == nil {
		return nil
	}
	return errors.Join(sentinel, err)
}
