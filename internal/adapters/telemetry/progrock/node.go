package progrock

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/deco/internal/core/ports"
)

// NodeID identifies the progress recorder in the graft graph.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(context.Context) (ports.Telemetry, error) {
			return New(), nil
		},
	})
}
