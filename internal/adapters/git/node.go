package git

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/roslock/internal/adapters/config"
	"go.trai.ch/roslock/internal/adapters/logger"
	"go.trai.ch/roslock/internal/core/domain"
	"go.trai.ch/roslock/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the Git adapter Graft node.
	NodeID graft.ID = "adapter.git"
	// IndexRepoNodeID is the unique identifier for the IndexRepo Graft node.
	IndexRepoNodeID graft.ID = "adapter.git.index_repo"
)

func init() {
	graft.Register(graft.Node[*Git]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Git, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log)
		},
	})

	graft.Register(graft.Node[*IndexRepo]{
		ID:        IndexRepoNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID, config.NodeID},
		Run: func(ctx context.Context) (*IndexRepo, error) {
			g, err := graft.Dep[*Git](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewIndexRepo(g, cfg), nil
		},
	})
}
