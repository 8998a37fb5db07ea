package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/iconkit/internal/adapters/bridge" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/iconkit/internal/adapters/config" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/iconkit/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/iconkit/internal/core/ports"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			bridge.NodeID,
		},
		Run: func(ctx context.Context) (*Resolver, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
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

			return New(
				capability,
				log,
				WithPreloadIcons(cfg.Preload.Icons...),
				WithPreloadConcurrency(cfg.Preload.Concurrency),
			), nil
		},
	})
}
