package cargo

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cratepath/internal/adapters/logger"
	"go.trai.ch/cratepath/internal/core/ports"
)

// NodeID is the unique identifier for the metadata source factory node.
const NodeID graft.ID = "adapter.cargo.source_factory"

func init() {
	graft.Register(graft.Node[ports.SourceFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.SourceFactory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(log), nil
		},
	})
}
