package rosdep

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/roslock/internal/adapters/logger"
	"go.trai.ch/roslock/internal/core/ports"
)

// NodeID is the unique identifier for the rosdep adapter Graft node.
const NodeID graft.ID = "adapter.rosdep"

func init() {
	graft.Register(graft.Node[*Rosdep]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Rosdep, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log)
		},
	})
}
