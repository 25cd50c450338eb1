package esbuild_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/deco/internal/adapters/esbuild"
	"go.trai.ch/deco/internal/core/domain"
)

func TestBundler_WritesOutput(t *testing.T) {
	entry := writeEntry(t, "main.ts", "export const answer: number = 42;\n")
	outdir := t.TempDir()

	report, err := esbuild.NewBundler().Build(context.Background(), esbuild.BundleRequest{
		EntryPoints: []string{entry},
		Outdir:      outdir,
	})
	require.NoError(t, err)
	require.Len(t, report.OutputFiles, 1)

	data, err := os.ReadFile(filepath.Join(outdir, "main.js"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "42")
}

func TestBundler_ReportsErrors(t *testing.T) {
	entry := writeEntry(t, "main.ts", "const = ;\n")

	_, err := esbuild.NewBundler().Build(context.Background(), esbuild.BundleRequest{
		EntryPoints: []string{entry},
		Outdir:      t.TempDir(),
	})
	require.ErrorIs(t, err, domain.ErrBuildFailed)
}

func TestBundler_RunsPlugins(t *testing.T) {
	entry := writeEntry(t, "main.ts", "export const original = 1;\n")
	outdir := t.TempDir()
	loader := &stubLoader{result: domain.Replace("export const replaced = 2;\n")}

	_, err := esbuild.NewBundler().Build(context.Background(), esbuild.BundleRequest{
		EntryPoints: []string{entry},
		Outdir:      outdir,
		Plugins: []api.Plugin{esbuild.Plugin(context.Background(), loader, esbuild.PluginConfig{
			Extensions: domain.ExtensionsTS,
			Enabled:    true,
		})},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outdir, "main.js"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "replaced")
}
