package app_test

import (
	"context"
	"errors"
	"iter"
	"os"
	"path/filepath"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/deco/internal/adapters/cache"
	"go.trai.ch/deco/internal/adapters/esbuild"
	"go.trai.ch/deco/internal/adapters/fingerprint"
	"go.trai.ch/deco/internal/adapters/fs"
	"go.trai.ch/deco/internal/adapters/scan"
	"go.trai.ch/deco/internal/adapters/strip"
	"go.trai.ch/deco/internal/adapters/telemetry"
	"go.trai.ch/deco/internal/app"
	"go.trai.ch/deco/internal/core/domain"
	"go.trai.ch/deco/internal/core/ports"
	"go.trai.ch/deco/internal/core/ports/mocks"
	"go.trai.ch/deco/internal/engine/scheduler"
	"go.uber.org/mock/gomock"
)

const (
	decorated = "@Injectable()\nexport class UsersService {}\n"
	plain     = "export const answer = 42;\n"
)

type stubBundler struct {
	req    esbuild.BundleRequest
	report esbuild.BundleReport
	err    error
}

func (b *stubBundler) Build(_ context.Context, req esbuild.BundleRequest) (esbuild.BundleReport, error) {
	b.req = req
	return b.report, b.err
}

type fixture struct {
	loader      *mocks.MockConfigLoader
	resolver    *mocks.MockInputResolver
	reader      *mocks.MockFileReader
	transformer *mocks.MockTransformer
	watcher     *mocks.MockWatcher
	logger      *mocks.MockLogger
	cache       *cache.ResultCache
	bundler     *stubBundler
	argv        [][]string
	app         *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		loader:      mocks.NewMockConfigLoader(ctrl),
		resolver:    mocks.NewMockInputResolver(ctrl),
		reader:      mocks.NewMockFileReader(ctrl),
		transformer: mocks.NewMockTransformer(ctrl),
		watcher:     mocks.NewMockWatcher(ctrl),
		logger:      mocks.NewMockLogger(ctrl),
		cache:       cache.New(0),
		bundler:     &stubBundler{},
	}

	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	f.app = app.New(app.Dependencies{
		ConfigLoader:  f.loader,
		Logger:        f.logger,
		Resolver:      f.resolver,
		Reader:        f.reader,
		Writer:        fs.NewWriter(),
		Fingerprinter: fingerprint.New(),
		Scanner:       scan.NewScanner(strip.New()),
		Cache:         f.cache,
		Esbuild:       f.transformer,
		CommandEngine: func(argv []string) (ports.Transformer, error) {
			f.argv = append(f.argv, argv)
			return f.transformer, nil
		},
		Bundler:   f.bundler,
		Scheduler: scheduler.NewScheduler(telemetry.NewNoOp()),
		Telemetry: telemetry.NewNoOp(),
		Watcher:   f.watcher,
	})

	return f
}

// expectConfig makes the loader return opts and the tsconfig precondition hold.
func (f *fixture) expectConfig(opts domain.Options) {
	f.loader.EXPECT().Load(".").Return(opts, nil)
	f.loader.EXPECT().EmitsDecoratorMetadata(opts.Tsconfig).Return(true, nil).AnyTimes()
	f.loader.EXPECT().CompilerOptions(opts.Tsconfig).Return("", nil).AnyTimes()
}

func TestApp_Scan_ReplacesDecoratedFiles(t *testing.T) {
	f := newFixture(t)
	f.expectConfig(domain.DefaultOptions())

	f.resolver.EXPECT().ResolveInputs([]string{"src"}, ".", gomock.Any()).Return([]string{"a.ts", "b.ts"}, nil)
	f.reader.EXPECT().ReadFile(gomock.Any(), "a.ts").Return(decorated, nil)
	f.reader.EXPECT().ReadFile(gomock.Any(), "b.ts").Return(plain, nil)
	f.transformer.EXPECT().Transform(gomock.Any(), domain.NewFileID("a.ts"), decorated, gomock.Any()).Return("transformed", nil)

	outDir := t.TempDir()
	summary, err := f.app.Scan(context.Background(), []string{"src"}, app.ScanOptions{OutDir: outDir})
	require.NoError(t, err)

	assert.Equal(t, app.Summary{Replaced: 1, Unchanged: 1}, summary)

	data, err := os.ReadFile(filepath.Join(outDir, "a.ts"))
	require.NoError(t, err)
	assert.Equal(t, "transformed", string(data))
	assert.NoFileExists(t, filepath.Join(outDir, "b.ts"))
}

func TestApp_Scan_PreconditionSkipsFiles(t *testing.T) {
	f := newFixture(t)
	opts := domain.DefaultOptions()
	f.loader.EXPECT().Load(".").Return(opts, nil)
	f.loader.EXPECT().EmitsDecoratorMetadata(opts.Tsconfig).Return(false, nil)
	f.resolver.EXPECT().ResolveInputs(gomock.Any(), ".", gomock.Any()).Return([]string{"a.ts", "b.ts"}, nil)

	summary, err := f.app.Scan(context.Background(), []string{"."}, app.ScanOptions{})
	require.NoError(t, err)
	assert.Equal(t, app.Summary{Skipped: 2}, summary)
}

func TestApp_Scan_ForceBypassesPrecondition(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(".").Return(domain.DefaultOptions(), nil)
	f.loader.EXPECT().CompilerOptions(domain.DefaultOptions().Tsconfig).Return("", nil)
	f.resolver.EXPECT().ResolveInputs(gomock.Any(), ".", gomock.Any()).Return([]string{"b.ts"}, nil)
	f.reader.EXPECT().ReadFile(gomock.Any(), "b.ts").Return(plain, nil)

	summary, err := f.app.Scan(context.Background(), []string{"."}, app.ScanOptions{
		RunOptions: app.RunOptions{Force: true},
	})
	require.NoError(t, err)
	assert.Equal(t, app.Summary{Unchanged: 1}, summary)
}

func TestApp_Scan_ReportsFailures(t *testing.T) {
	f := newFixture(t)
	f.expectConfig(domain.DefaultOptions())
	f.resolver.EXPECT().ResolveInputs(gomock.Any(), ".", gomock.Any()).Return([]string{"a.ts", "b.ts"}, nil)
	f.reader.EXPECT().ReadFile(gomock.Any(), "a.ts").Return("", os.ErrPermission)
	f.reader.EXPECT().ReadFile(gomock.Any(), "b.ts").Return(plain, nil)

	summary, err := f.app.Scan(context.Background(), []string{"."}, app.ScanOptions{})
	require.ErrorIs(t, err, domain.ErrScanFailed)
	require.ErrorIs(t, err, domain.ErrReadFailed)
	assert.Equal(t, app.Summary{Unchanged: 1, Failed: 1}, summary)
}

func TestApp_Scan_AppliesOverrides(t *testing.T) {
	f := newFixture(t)
	f.expectConfig(domain.DefaultOptions())

	var accept func(string) bool
	f.resolver.EXPECT().ResolveInputs(gomock.Any(), ".", gomock.Any()).
		DoAndReturn(func(_ []string, _ string, fn func(string) bool) ([]string, error) {
			accept = fn
			return []string{"view.tsx"}, nil
		})
	f.reader.EXPECT().ReadFile(gomock.Any(), "view.tsx").Return(plain, nil)

	_, err := f.app.Scan(context.Background(), []string{"."}, app.ScanOptions{
		RunOptions: app.RunOptions{TSX: true, Cache: true, CacheSize: "64MB"},
	})
	require.NoError(t, err)

	assert.True(t, accept("view.tsx"))
	assert.Equal(t, int64(64_000_000), f.cache.Stats().CapacityBytes)
	assert.Equal(t, 1, f.cache.Stats().Entries)
}

func TestApp_Scan_NoCacheWins(t *testing.T) {
	f := newFixture(t)
	opts := domain.DefaultOptions()
	opts.CachingEnabled = true
	f.expectConfig(opts)
	f.resolver.EXPECT().ResolveInputs(gomock.Any(), ".", gomock.Any()).Return([]string{"b.ts"}, nil)
	f.reader.EXPECT().ReadFile(gomock.Any(), "b.ts").Return(plain, nil)

	_, err := f.app.Scan(context.Background(), []string{"."}, app.ScanOptions{
		RunOptions: app.RunOptions{NoCache: true},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, f.cache.Stats().Entries)
}

func TestApp_Scan_CommandEngine(t *testing.T) {
	f := newFixture(t)
	opts := domain.DefaultOptions()
	opts.Engine = domain.EngineCommand
	opts.EngineCommand = []string{"tsc-transpile", "--stdin"}
	f.expectConfig(opts)

	f.resolver.EXPECT().ResolveInputs(gomock.Any(), ".", gomock.Any()).Return([]string{"a.ts"}, nil)
	f.reader.EXPECT().ReadFile(gomock.Any(), "a.ts").Return(decorated, nil)
	f.transformer.EXPECT().Transform(gomock.Any(), gomock.Any(), decorated, gomock.Any()).Return("out", nil)

	summary, err := f.app.Scan(context.Background(), []string{"."}, app.ScanOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Replaced)
	assert.Equal(t, [][]string{{"tsc-transpile", "--stdin"}}, f.argv)
}

func TestApp_Scan_TsconfigOverrideIsRelativeToDir(t *testing.T) {
	f := newFixture(t)
	tsconfig := filepath.Join("proj", "tsconfig.build.json")
	compilerOptions := `{"target":"ES2022"}`

	f.loader.EXPECT().Load("proj").Return(domain.DefaultOptions(), nil)
	f.loader.EXPECT().EmitsDecoratorMetadata(tsconfig).Return(true, nil)
	f.loader.EXPECT().CompilerOptions(tsconfig).Return(compilerOptions, nil)
	f.resolver.EXPECT().ResolveInputs([]string{"src"}, "proj", gomock.Any()).Return([]string{"proj/src/a.ts"}, nil)
	f.reader.EXPECT().ReadFile(gomock.Any(), "proj/src/a.ts").Return(decorated, nil)
	f.transformer.EXPECT().
		Transform(gomock.Any(), domain.NewFileID("proj/src/a.ts"), decorated, domain.TransformOptions{CompilerOptions: compilerOptions}).
		Return("out", nil)

	summary, err := f.app.Scan(context.Background(), []string{"src"}, app.ScanOptions{
		RunOptions: app.RunOptions{Dir: "proj", Tsconfig: "tsconfig.build.json"},
	})
	require.NoError(t, err)
	assert.Equal(t, app.Summary{Replaced: 1}, summary)
}

func TestApp_Scan_AbsoluteTsconfigOverrideIsKept(t *testing.T) {
	f := newFixture(t)
	tsconfig := filepath.Join(t.TempDir(), "tsconfig.json")

	f.loader.EXPECT().Load("proj").Return(domain.DefaultOptions(), nil)
	f.loader.EXPECT().EmitsDecoratorMetadata(tsconfig).Return(false, nil)
	f.resolver.EXPECT().ResolveInputs(gomock.Any(), "proj", gomock.Any()).Return([]string{"proj/a.ts"}, nil)

	summary, err := f.app.Scan(context.Background(), []string{"."}, app.ScanOptions{
		RunOptions: app.RunOptions{Dir: "proj", Tsconfig: tsconfig},
	})
	require.NoError(t, err)
	assert.Equal(t, app.Summary{Skipped: 1}, summary)
}

func TestApp_Scan_InvalidCacheSize(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(".").Return(domain.DefaultOptions(), nil)

	_, err := f.app.Scan(context.Background(), []string{"."}, app.ScanOptions{
		RunOptions: app.RunOptions{CacheSize: "lots"},
	})
	require.Error(t, err)
}

func TestApp_Scan_ConfigLoaderError(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(".").Return(domain.Options{}, domain.ErrConfigParseFailed)

	_, err := f.app.Scan(context.Background(), []string{"."}, app.ScanOptions{})
	require.ErrorIs(t, err, domain.ErrConfigParseFailed)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestApp_Scan_ResolveError(t *testing.T) {
	f := newFixture(t)
	f.expectConfig(domain.DefaultOptions())
	f.resolver.EXPECT().ResolveInputs(gomock.Any(), ".", gomock.Any()).Return(nil, domain.ErrNoInputsMatched)

	_, err := f.app.Scan(context.Background(), []string{"nothing/**"}, app.ScanOptions{})
	require.ErrorIs(t, err, domain.ErrNoInputsMatched)
}

func TestApp_Build_ConfiguresBundler(t *testing.T) {
	f := newFixture(t)
	f.expectConfig(domain.DefaultOptions())
	f.bundler.report = esbuild.BundleReport{OutputFiles: []string{"dist/main.js"}}

	report, err := f.app.Build(context.Background(), []string{"src/main.ts"}, app.BuildOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"dist/main.js"}, report.OutputFiles)
	assert.Equal(t, []string{filepath.Join(".", "src/main.ts")}, f.bundler.req.EntryPoints)
	assert.Equal(t, filepath.Join(".", app.DefaultOutdir), f.bundler.req.Outdir)
	assert.Len(t, f.bundler.req.Plugins, 1)
	assert.Empty(t, f.bundler.req.Tsconfig, "missing tsconfig is not passed to esbuild")
}

func TestApp_Build_PropagatesBundlerError(t *testing.T) {
	f := newFixture(t)
	f.expectConfig(domain.DefaultOptions())
	f.bundler.err = errors.Join(domain.ErrBuildFailed, errors.New("Expected identifier"))

	_, err := f.app.Build(context.Background(), []string{"main.ts"}, app.BuildOptions{Outdir: "out"})
	require.ErrorIs(t, err, domain.ErrBuildFailed)
	assert.Equal(t, filepath.Join(".", "out"), f.bundler.req.Outdir)
}

func TestApp_Build_RequiresEntryPoints(t *testing.T) {
	f := newFixture(t)

	_, err := f.app.Build(context.Background(), nil, app.BuildOptions{})
	require.ErrorIs(t, err, domain.ErrNoInputsSpecified)
}

func events(evs ...ports.WatchEvent) iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for _, e := range evs {
			if !yield(e) {
				return
			}
		}
	}
}

func TestApp_Watch_ServesUnchangedFilesFromCache(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		f.expectConfig(domain.DefaultOptions())

		f.resolver.EXPECT().ResolveInputs([]string{"src"}, ".", gomock.Any()).Return([]string{"src/a.ts"}, nil).Times(2)
		f.reader.EXPECT().ReadFile(gomock.Any(), "src/a.ts").Return(decorated, nil).Times(2)
		f.transformer.EXPECT().Transform(gomock.Any(), domain.NewFileID("src/a.ts"), decorated, gomock.Any()).Return("out", nil).Times(1)

		f.watcher.EXPECT().Start(gomock.Any(), ".").Return(nil)
		f.watcher.EXPECT().Events().Return(events(
			ports.WatchEvent{Path: "src/a.ts", Operation: ports.OpWrite},
			ports.WatchEvent{Path: "src/a.ts", Operation: ports.OpWrite},
			ports.WatchEvent{Path: "README.md", Operation: ports.OpWrite},
			ports.WatchEvent{Path: "src/gone.ts", Operation: ports.OpRemove},
		))
		f.watcher.EXPECT().Stop().Return(nil)

		err := f.app.Watch(context.Background(), []string{"src"}, app.RunOptions{})
		require.NoError(t, err)

		stats := f.cache.Stats()
		assert.Equal(t, uint64(1), stats.Hits)
		assert.Equal(t, 1, stats.Entries)
	})
}

func TestApp_Watch_IgnoresUnselectedFiles(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		f.expectConfig(domain.DefaultOptions())

		f.resolver.EXPECT().ResolveInputs(gomock.Any(), ".", gomock.Any()).Return([]string{"src/a.ts"}, nil).Times(2)
		f.reader.EXPECT().ReadFile(gomock.Any(), "src/a.ts").Return(plain, nil).Times(1)

		f.watcher.EXPECT().Start(gomock.Any(), ".").Return(nil)
		f.watcher.EXPECT().Events().Return(events(
			ports.WatchEvent{Path: "test/a.spec.ts", Operation: ports.OpCreate},
		))
		f.watcher.EXPECT().Stop().Return(nil)

		require.NoError(t, f.app.Watch(context.Background(), []string{"src"}, app.RunOptions{}))
	})
}

func TestApp_Watch_StartFailure(t *testing.T) {
	f := newFixture(t)
	f.expectConfig(domain.DefaultOptions())
	f.resolver.EXPECT().ResolveInputs(gomock.Any(), ".", gomock.Any()).Return([]string{"a.ts"}, nil)
	f.reader.EXPECT().ReadFile(gomock.Any(), "a.ts").Return(plain, nil)
	f.watcher.EXPECT().Start(gomock.Any(), ".").Return(domain.ErrWatcherFailed)

	err := f.app.Watch(context.Background(), []string{"."}, app.RunOptions{})
	require.ErrorIs(t, err, domain.ErrWatcherFailed)
}
