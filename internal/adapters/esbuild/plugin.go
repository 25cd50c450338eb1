package esbuild

import (
	"context"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/deco/internal/core/domain"
	"go.trai.ch/deco/internal/core/ports"
	"go.trai.ch/zerr"
)

// PluginName is the name esbuild reports for diagnostics raised by the plugin.
const PluginName = "deco"

// FileLoader processes a single file by path.
type FileLoader interface {
	Load(ctx context.Context, path string, cachingEnabled bool) domain.Result
}

// PluginConfig controls the load hook.
type PluginConfig struct {
	// Extensions selects the files the hook is registered for.
	Extensions domain.ExtensionFilter
	// Enabled is false when the scan precondition does not hold; the hook then declines every file.
	Enabled bool
	// CachingEnabled is passed to the loader for every file.
	CachingEnabled bool
	// Telemetry records one vertex per loaded file. It may be nil.
	Telemetry ports.Telemetry
}

// Plugin returns an esbuild plugin whose load hook runs matching files through loader.
//
// NoAction results decline the file so esbuild falls back to its own loader.
// Replace results hand the transformed JavaScript back to esbuild. Failures become
// build errors located at the file.
func Plugin(ctx context.Context, loader FileLoader, cfg PluginConfig) api.Plugin {
	return api.Plugin{
		Name: PluginName,
		Setup: func(build api.PluginBuild) {
			build.OnLoad(api.OnLoadOptions{Filter: cfg.Extensions.Pattern()},
				func(args api.OnLoadArgs) (api.OnLoadResult, error) {
					if !cfg.Enabled {
						return api.OnLoadResult{}, nil
					}
					return onLoad(ctx, loader, cfg, args.Path), nil
				})
		},
	}
}

func onLoad(ctx context.Context, loader FileLoader, cfg PluginConfig, path string) api.OnLoadResult {
	var vertex ports.Vertex
	if cfg.Telemetry != nil {
		ctx, vertex = cfg.Telemetry.Record(ctx, path)
	}

	result := loader.Load(ctx, path, cfg.CachingEnabled)
	if vertex != nil {
		vertex.Complete(result.Err)
	}

	switch result.Kind {
	case domain.ResultReplace:
		text := result.Text
		return api.OnLoadResult{PluginName: PluginName, Contents: &text, Loader: api.LoaderJS}
	case domain.ResultFailure:
		return api.OnLoadResult{PluginName: PluginName, Errors: failureMessages(path, result.Err)}
	default:
		return api.OnLoadResult{}
	}
}

// failureMessages converts a pipeline failure into esbuild messages located at path.
// Engine diagnostics that already carry a location keep it.
func failureMessages(path string, err error) []api.Message {
	var msgs []api.Message
	collectLocated(err, &msgs)
	if len(msgs) == 0 {
		msgs = append(msgs, api.Message{Text: err.Error(), Location: &api.Location{File: path}})
	}
	return msgs
}

func collectLocated(err error, msgs *[]api.Message) {
	if err == nil {
		return
	}

	if z, ok := err.(*zerr.Error); ok {
		md := z.Metadata()
		if file, ok := md["file"].(string); ok {
			line, _ := md["line"].(int)
			column, _ := md["column"].(int)
			*msgs = append(*msgs, api.Message{
				Text:     z.Message(),
				Location: &api.Location{File: file, Line: line, Column: column},
			})
			return
		}
	}

	switch e := err.(type) {
	case interface{ Unwrap() []error }:
		for _, inner := range e.Unwrap() {
			collectLocated(inner, msgs)
		}
	case interface{ Unwrap() error }:
		collectLocated(e.Unwrap(), msgs)
	}
}
