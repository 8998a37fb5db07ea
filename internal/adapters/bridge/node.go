package bridge

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/iconkit/internal/adapters/config"
	"go.trai.ch/iconkit/internal/adapters/logger"
	"go.trai.ch/iconkit/internal/adapters/telemetry"
	"go.trai.ch/iconkit/internal/core/ports"
)

// NodeID is the unique identifier for the bridge capability Graft node.
const NodeID graft.ID = "adapter.bridge"

func init() {
	graft.Register(graft.Node[ports.Capability]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (ports.Capability, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return ports.Capability{}, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return ports.Capability{}, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return ports.Capability{}, err
			}

			capability := Probe(ctx, log, DefaultLocations(
				cfg.Bridge.Socket,
				cfg.Bridge.LegacyURL,
				cfg.Bridge.CallTimeout,
			)...)
			if capability.Available() {
				capability.Bridge = WithTracing(capability.Bridge, tracer)
			}
			return capability, nil
		},
	})
}
