package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/roslock/internal/adapters/colcon"
	"go.trai.ch/roslock/internal/adapters/config"
	"go.trai.ch/roslock/internal/adapters/git"
	"go.trai.ch/roslock/internal/adapters/lockfile"
	"go.trai.ch/roslock/internal/adapters/logger"
	"go.trai.ch/roslock/internal/adapters/rosdep"
	"go.trai.ch/roslock/internal/adapters/telemetry"
	"go.trai.ch/roslock/internal/core/domain"
	"go.trai.ch/roslock/internal/core/ports"
	"go.trai.ch/roslock/internal/engine/index"
	"go.trai.ch/roslock/internal/engine/resolver"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			git.NodeID,
			git.IndexRepoNodeID,
			colcon.NodeID,
			rosdep.NodeID,
			lockfile.NodeID,
			logger.NodeID,
			index.NodeID,
			resolver.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.NodeID,
			config.NodeID,
		},
		Run: runComponentsNode,
	})
}

//nolint:cyclop // dependency assembly
func runAppNode(ctx context.Context) (*App, error) {
	cfg, err := graft.Dep[domain.Config](ctx)
	if err != nil {
		return nil, err
	}
	indexRepo, err := graft.Dep[*git.IndexRepo](ctx)
	if err != nil {
		return nil, err
	}
	scanner, err := graft.Dep[ports.PackageScanner](ctx)
	if err != nil {
		return nil, err
	}
	rd, err := graft.Dep[*rosdep.Rosdep](ctx)
	if err != nil {
		return nil, err
	}
	catalog, err := graft.Dep[*index.Service](ctx)
	if err != nil {
		return nil, err
	}
	res, err := graft.Dep[*resolver.Resolver](ctx)
	if err != nil {
		return nil, err
	}
	lockStore, err := graft.Dep[ports.LockfileStore](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(cfg, indexRepo, scanner, rd, rd, catalog, res, lockStore, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
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
	cfg, err := graft.Dep[domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       application,
		Logger:    log,
		Telemetry: tel,
		Config:    cfg,
	}, nil
}
