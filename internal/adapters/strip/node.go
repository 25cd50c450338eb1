package strip

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/deco/internal/core/ports"
)

// NodeID is the unique identifier for the stripper Graft node.
const NodeID graft.ID = "adapter.strip"

func init() {
	graft.Register(graft.Node[ports.Stripper]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Stripper, error) {
			return New(), nil
		},
	})
}
