package scan

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/deco/internal/adapters/strip"
	"go.trai.ch/deco/internal/core/ports"
)

// NodeID is the unique identifier for the construct scanner Graft node.
const NodeID graft.ID = "adapter.scan"

func init() {
	graft.Register(graft.Node[ports.ConstructScanner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{strip.NodeID},
		Run: func(ctx context.Context) (ports.ConstructScanner, error) {
			stripper, err := graft.Dep[ports.Stripper](ctx)
			if err != nil {
				return nil, err
			}
			return NewScanner(stripper), nil
		},
	})
}
