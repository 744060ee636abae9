package progrock

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cratepath/internal/adapters/logger"
	"go.trai.ch/cratepath/internal/core/ports"
)

// NodeID is the unique identifier for the telemetry adapter node.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	// Not cacheable: a recorder is closed at the end of every run.
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Telemetry, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log), nil
		},
	})
}
