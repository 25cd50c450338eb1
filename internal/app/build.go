package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/deco/internal/adapters/esbuild" //nolint:depguard // Wired in app layer
	"go.trai.ch/deco/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultOutdir is where Build writes the bundle when no directory is given.
const DefaultOutdir = "dist"

// BuildOptions configures the Build command.
type BuildOptions struct {
	RunOptions
	// Outdir receives the bundle.
	Outdir string
}

// Build bundles the entry points with esbuild, running every loaded source file through the pipeline.
func (a *App) Build(ctx context.Context, entryPoints []string, opts BuildOptions) (esbuild.BundleReport, error) {
	if len(entryPoints) == 0 {
		return esbuild.BundleReport{}, domain.ErrNoInputsSpecified
	}

	resolved, err := a.resolveOptions(opts.RunOptions)
	if err != nil {
		return esbuild.BundleReport{}, err
	}

	sess, err := a.newSession(resolved)
	if err != nil {
		return esbuild.BundleReport{}, err
	}

	outdir := opts.Outdir
	if outdir == "" {
		outdir = DefaultOutdir
	}

	entries := make([]string, len(entryPoints))
	for i, e := range entryPoints {
		if filepath.IsAbs(e) {
			entries[i] = e
		} else {
			entries[i] = filepath.Join(opts.dir(), e)
		}
	}
	if !filepath.IsAbs(outdir) {
		outdir = filepath.Join(opts.dir(), outdir)
	}

	plugin := esbuild.Plugin(ctx, sess.loader, esbuild.PluginConfig{
		Extensions:     resolved.Extensions,
		Enabled:        sess.enabled,
		CachingEnabled: resolved.CachingEnabled,
		Telemetry:      a.telemetry,
	})

	report, err := a.bundler.Build(ctx, esbuild.BundleRequest{
		EntryPoints: entries,
		Outdir:      outdir,
		Tsconfig:    existingFile(resolved.Tsconfig),
		Plugins:     []api.Plugin{plugin},
	})
	if err != nil {
		return report, zerr.With(err, "outdir", outdir)
	}

	a.logger.Info(fmt.Sprintf("built %d files into %s (%d warnings)", len(report.OutputFiles), outdir, report.Warnings))
	if resolved.CachingEnabled {
		a.logStats()
	}

	return report, nil
}

// existingFile returns path when it names a regular file, and "" otherwise.
func existingFile(path string) string {
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		return path
	}
	return ""
}
