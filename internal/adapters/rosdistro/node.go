package rosdistro

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/roslock/internal/adapters/config"
	"go.trai.ch/roslock/internal/core/domain"
	"go.trai.ch/roslock/internal/core/ports"
)

// CacheNodeID is the unique identifier for the catalog cache Graft node.
const CacheNodeID graft.ID = "adapter.rosdistro.cache"

func init() {
	graft.Register(graft.Node[ports.CatalogStore]{
		ID:        CacheNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.CatalogStore, error) {
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewCatalogCache(cfg), nil
		},
	})
}
