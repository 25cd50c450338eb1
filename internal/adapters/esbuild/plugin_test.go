package esbuild_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/deco/internal/adapters/esbuild"
	"go.trai.ch/deco/internal/core/domain"
	"go.trai.ch/deco/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type stubLoader struct {
	mu      sync.Mutex
	result  domain.Result
	paths   []string
	caching []bool
}

func (s *stubLoader) Load(_ context.Context, path string, cachingEnabled bool) domain.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paths = append(s.paths, path)
	s.caching = append(s.caching, cachingEnabled)
	return s.result
}

func writeEntry(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func build(t *testing.T, entry string, plugin api.Plugin) api.BuildResult {
	t.Helper()
	return api.Build(api.BuildOptions{
		EntryPoints: []string{entry},
		Outdir:      t.TempDir(),
		Bundle:      true,
		Write:       false,
		Format:      api.FormatESModule,
		LogLevel:    api.LogLevelSilent,
		Plugins:     []api.Plugin{plugin},
	})
}

func TestPlugin_ReplaceUsesPipelineOutput(t *testing.T) {
	entry := writeEntry(t, "main.ts", "export const original: number = 1;\n")
	loader := &stubLoader{result: domain.Replace("export const replaced = 42;\n")}

	plugin := esbuild.Plugin(context.Background(), loader, esbuild.PluginConfig{
		Extensions:     domain.ExtensionsTS,
		Enabled:        true,
		CachingEnabled: true,
	})

	result := build(t, entry, plugin)
	require.Empty(t, result.Errors)
	require.Len(t, result.OutputFiles, 1)

	out := string(result.OutputFiles[0].Contents)
	assert.Contains(t, out, "replaced")
	assert.NotContains(t, out, "original")
	assert.Equal(t, []string{entry}, loader.paths)
	assert.Equal(t, []bool{true}, loader.caching)
}

func TestPlugin_NoActionFallsBack(t *testing.T) {
	entry := writeEntry(t, "main.ts", "export const original: number = 1;\n")
	loader := &stubLoader{result: domain.NoAction()}

	plugin := esbuild.Plugin(context.Background(), loader, esbuild.PluginConfig{
		Extensions: domain.ExtensionsTS,
		Enabled:    true,
	})

	result := build(t, entry, plugin)
	require.Empty(t, result.Errors)
	require.Len(t, result.OutputFiles, 1)
	assert.Contains(t, string(result.OutputFiles[0].Contents), "original")
	assert.Len(t, loader.paths, 1)
}

func TestPlugin_DisabledNeverLoads(t *testing.T) {
	entry := writeEntry(t, "main.ts", "export const original: number = 1;\n")
	loader := &stubLoader{result: domain.Replace("export const replaced = 42;\n")}

	plugin := esbuild.Plugin(context.Background(), loader, esbuild.PluginConfig{
		Extensions: domain.ExtensionsTS,
		Enabled:    false,
	})

	result := build(t, entry, plugin)
	require.Empty(t, result.Errors)
	assert.Contains(t, string(result.OutputFiles[0].Contents), "original")
	assert.Empty(t, loader.paths)
}

func TestPlugin_ExtensionFilter(t *testing.T) {
	entry := writeEntry(t, "view.tsx", "export const v: number = 1;\n")
	loader := &stubLoader{result: domain.NoAction()}

	plugin := esbuild.Plugin(context.Background(), loader, esbuild.PluginConfig{
		Extensions: domain.ExtensionsTS,
		Enabled:    true,
	})

	result := build(t, entry, plugin)
	require.Empty(t, result.Errors)
	assert.Empty(t, loader.paths, "tsx files are outside the ts filter")
}

func TestPlugin_FailureBecomesBuildError(t *testing.T) {
	entry := writeEntry(t, "main.ts", "export const a = 1;\n")
	loader := &stubLoader{result: domain.Failure(errors.Join(domain.ErrReadFailed, errors.New("permission denied")))}

	plugin := esbuild.Plugin(context.Background(), loader, esbuild.PluginConfig{
		Extensions: domain.ExtensionsTS,
		Enabled:    true,
	})

	result := build(t, entry, plugin)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0].Text, "permission denied")
	assert.Equal(t, esbuild.PluginName, result.Errors[0].PluginName)
}

func TestPlugin_RecordsTelemetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	telemetry := mocks.NewMockTelemetry(ctrl)
	vertex := mocks.NewMockVertex(ctrl)

	entry := writeEntry(t, "main.ts", "export const a = 1;\n")
	loader := &stubLoader{result: domain.NoAction()}

	telemetry.EXPECT().Record(gomock.Any(), entry).Return(context.Background(), vertex)
	vertex.EXPECT().Complete(nil)

	plugin := esbuild.Plugin(context.Background(), loader, esbuild.PluginConfig{
		Extensions: domain.ExtensionsTS,
		Enabled:    true,
		Telemetry:  telemetry,
	})

	result := build(t, entry, plugin)
	require.Empty(t, result.Errors)
}
