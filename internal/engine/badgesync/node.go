package badgesync

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/iconkit/internal/adapters/config" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/iconkit/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/iconkit/internal/core/ports"
	"go.trai.ch/iconkit/internal/engine/resolver"
)

// NodeID is the unique identifier for the badge syncer Graft node.
const NodeID graft.ID = "engine.badgesync"

func init() {
	graft.Register(graft.Node[*Syncer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			resolver.NodeID,
		},
		Run: func(ctx context.Context) (*Syncer, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			r, err := graft.Dep[*resolver.Resolver](ctx)
			if err != nil {
				return nil, err
			}

			return New(r, log, cfg.TitleRegexp()), nil
		},
	})
}
