package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/roslock/internal/adapters/logger"
	"go.trai.ch/roslock/internal/adapters/rosdep"
	"go.trai.ch/roslock/internal/adapters/syspkg"
	"go.trai.ch/roslock/internal/core/ports"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			rosdep.NodeID,
			syspkg.AptNodeID,
			syspkg.PipNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Resolver, error) {
			rd, err := graft.Dep[*rosdep.Rosdep](ctx)
			if err != nil {
				return nil, err
			}
			apt, err := graft.Dep[ports.AptInspector](ctx)
			if err != nil {
				return nil, err
			}
			pip, err := graft.Dep[ports.PipInspector](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(rd, apt, pip, log), nil
		},
	})
}
