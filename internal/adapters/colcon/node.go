package colcon

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/roslock/internal/adapters/git"
	"go.trai.ch/roslock/internal/adapters/logger"
	"go.trai.ch/roslock/internal/core/ports"
)

// NodeID is the unique identifier for the colcon scanner Graft node.
const NodeID graft.ID = "adapter.colcon"

func init() {
	graft.Register(graft.Node[ports.PackageScanner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{git.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.PackageScanner, error) {
			g, err := graft.Dep[*git.Git](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewScanner(g, log)
		},
	})
}
