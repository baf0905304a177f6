package syspkg

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/roslock/internal/adapters/logger"
	"go.trai.ch/roslock/internal/core/ports"
)

const (
	// AptNodeID is the unique identifier for the apt inspector Graft node.
	AptNodeID graft.ID = "adapter.syspkg.apt"
	// PipNodeID is the unique identifier for the pip inspector Graft node.
	PipNodeID graft.ID = "adapter.syspkg.pip"
)

func init() {
	graft.Register(graft.Node[ports.AptInspector]{
		ID:        AptNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.AptInspector, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewApt(log)
		},
	})

	graft.Register(graft.Node[ports.PipInspector]{
		ID:        PipNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.PipInspector, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewPip(log)
		},
	})
}
