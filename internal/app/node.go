package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/iconkit/internal/adapters/bridge" //nolint:depguard // Wired in app layer
	"go.trai.ch/iconkit/internal/adapters/element"
	"go.trai.ch/iconkit/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/iconkit/internal/core/ports"
	"go.trai.ch/iconkit/internal/engine/badgesync"
	"go.trai.ch/iconkit/internal/engine/resolver"
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
			logger.NodeID,
			resolver.NodeID,
			badgesync.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			res, err := graft.Dep[*resolver.Resolver](ctx)
			if err != nil {
				return nil, err
			}

			syncer, err := graft.Dep[*badgesync.Syncer](ctx)
			if err != nil {
				return nil, err
			}

			return New(res, syncer, element.NewBuilder(res), log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			bridge.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	capability, err := graft.Dep[ports.Capability](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:        app,
		Logger:     log,
		Capability: capability,
	}, nil
}
