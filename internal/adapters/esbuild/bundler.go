package esbuild

import (
	"context"
	"errors"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/deco/internal/core/domain"
	"go.trai.ch/zerr"
)

// BundleRequest describes one esbuild build.
type BundleRequest struct {
	EntryPoints []string
	Outdir      string
	Tsconfig    string
	Plugins     []api.Plugin
}

// BundleReport summarizes a finished build.
type BundleReport struct {
	OutputFiles []string
	Warnings    int
}

// Bundler runs esbuild builds.
type Bundler struct{}

// NewBundler creates a new Bundler.
func NewBundler() *Bundler {
	return &Bundler{}
}

// Build bundles the entry points into req.Outdir. Packages under node_modules stay external.
func (b *Bundler) Build(ctx context.Context, req BundleRequest) (BundleReport, error) {
	if err := ctx.Err(); err != nil {
		return BundleReport{}, err
	}

	result := api.Build(api.BuildOptions{
		EntryPoints: req.EntryPoints,
		Outdir:      req.Outdir,
		Tsconfig:    req.Tsconfig,
		Plugins:     req.Plugins,
		Bundle:      true,
		Write:       true,
		Platform:    api.PlatformNode,
		Format:      api.FormatESModule,
		Packages:    api.PackagesExternal,
		LogLevel:    api.LogLevelSilent,
	})
	if len(result.Errors) > 0 {
		return BundleReport{}, errors.Join(domain.ErrBuildFailed, messagesError(result.Errors))
	}

	report := BundleReport{Warnings: len(result.Warnings)}
	for _, f := range result.OutputFiles {
		report.OutputFiles = append(report.OutputFiles, f.Path)
	}

	if err := ctx.Err(); err != nil {
		return report, zerr.Wrap(err, "build interrupted")
	}

	return report, nil
}
