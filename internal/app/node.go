package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/deco/internal/adapters/cache"              //nolint:depguard // Wired in app layer
	"go.trai.ch/deco/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/deco/internal/adapters/esbuild"            //nolint:depguard // Wired in app layer
	"go.trai.ch/deco/internal/adapters/fingerprint"        //nolint:depguard // Wired in app layer
	"go.trai.ch/deco/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/deco/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/deco/internal/adapters/scan"               //nolint:depguard // Wired in app layer
	"go.trai.ch/deco/internal/adapters/shell"              //nolint:depguard // Wired in app layer
	"go.trai.ch/deco/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/deco/internal/adapters/watcher"            //nolint:depguard // Wired in app layer
	"go.trai.ch/deco/internal/core/ports"
	"go.trai.ch/deco/internal/engine/scheduler"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds what the command line entry point needs.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			fs.ResolverNodeID,
			fs.ReaderNodeID,
			fs.WriterNodeID,
			fingerprint.NodeID,
			scan.NodeID,
			cache.NodeID,
			esbuild.TransformerNodeID,
			esbuild.BundlerNodeID,
			shell.NodeID,
			scheduler.NodeID,
			progrock.NodeID,
			watcher.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log, Telemetry: telemetry}, nil
		},
	})
}

//nolint:cyclop // one lookup per dependency
func runAppNode(ctx context.Context) (*App, error) {
	var deps Dependencies
	var err error

	if deps.ConfigLoader, err = graft.Dep[ports.ConfigLoader](ctx); err != nil {
		return nil, err
	}
	if deps.Logger, err = graft.Dep[ports.Logger](ctx); err != nil {
		return nil, err
	}
	if deps.Resolver, err = graft.Dep[ports.InputResolver](ctx); err != nil {
		return nil, err
	}
	if deps.Reader, err = graft.Dep[ports.FileReader](ctx); err != nil {
		return nil, err
	}
	if deps.Writer, err = graft.Dep[*fs.Writer](ctx); err != nil {
		return nil, err
	}
	if deps.Fingerprinter, err = graft.Dep[ports.Fingerprinter](ctx); err != nil {
		return nil, err
	}
	if deps.Scanner, err = graft.Dep[ports.ConstructScanner](ctx); err != nil {
		return nil, err
	}
	if deps.Cache, err = graft.Dep[ports.ResultCache](ctx); err != nil {
		return nil, err
	}
	if deps.Esbuild, err = graft.Dep[*esbuild.Transformer](ctx); err != nil {
		return nil, err
	}
	if deps.Bundler, err = graft.Dep[*esbuild.Bundler](ctx); err != nil {
		return nil, err
	}
	if deps.Scheduler, err = graft.Dep[*scheduler.Scheduler](ctx); err != nil {
		return nil, err
	}
	if deps.Telemetry, err = graft.Dep[ports.Telemetry](ctx); err != nil {
		return nil, err
	}
	if deps.Watcher, err = graft.Dep[ports.Watcher](ctx); err != nil {
		return nil, err
	}

	runner, err := graft.Dep[*shell.Runner](ctx)
	if err != nil {
		return nil, err
	}
	deps.CommandEngine = func(argv []string) (ports.Transformer, error) {
		t, err := runner.Transformer(argv)
		if err != nil {
			return nil, err
		}
		return t, nil
	}

	return New(deps), nil
}
