package esbuild

import (
	"context"

	"github.com/grindlemire/graft"
)

const (
	// TransformerNodeID is the unique identifier for the esbuild transformer Graft node.
	TransformerNodeID graft.ID = "adapter.esbuild.transformer"
	// BundlerNodeID is the unique identifier for the esbuild bundler Graft node.
	BundlerNodeID graft.ID = "adapter.esbuild.bundler"
)

func init() {
	graft.Register(graft.Node[*Transformer]{
		ID:        TransformerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Transformer, error) {
			return NewTransformer(), nil
		},
	})

	graft.Register(graft.Node[*Bundler]{
		ID:        BundlerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Bundler, error) {
			return NewBundler(), nil
		},
	})
}
