package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/deco/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// ResolverNodeID is the unique identifier for the input resolver Graft node.
	ResolverNodeID graft.ID = "adapter.fs.resolver"
	// ReaderNodeID is the unique identifier for the file reader Graft node.
	ReaderNodeID graft.ID = "adapter.fs.reader"
	// WriterNodeID is the unique identifier for the output writer Graft node.
	WriterNodeID graft.ID = "adapter.fs.writer"
)

func init() {
	// Walker Node (Concrete implementation needed by Resolver and the watcher)
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.InputResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.InputResolver, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(walker), nil
		},
	})

	graft.Register(graft.Node[ports.FileReader]{
		ID:        ReaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileReader, error) {
			return NewReader(), nil
		},
	})

	graft.Register(graft.Node[*Writer]{
		ID:        WriterNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Writer, error) {
			return NewWriter(), nil
		},
	})
}
