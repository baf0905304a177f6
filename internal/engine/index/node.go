package index

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/roslock/internal/adapters/git"
	"go.trai.ch/roslock/internal/adapters/logger"
	"go.trai.ch/roslock/internal/adapters/rosdistro"
	"go.trai.ch/roslock/internal/adapters/telemetry"
	"go.trai.ch/roslock/internal/core/ports"
)

// NodeID is the unique identifier for the index service Graft node.
const NodeID graft.ID = "engine.index"

func init() {
	graft.Register(graft.Node[*Service]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			git.NodeID,
			logger.NodeID,
			telemetry.NodeID,
			rosdistro.CacheNodeID,
		},
		Run: func(ctx context.Context) (*Service, error) {
			fetcher, err := graft.Dep[*git.Git](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.CatalogStore](ctx)
			if err != nil {
				return nil, err
			}

			builder := NewBuilder(fetcher, log, tel)
			return NewService(builder, store, log), nil
		},
	})
}
