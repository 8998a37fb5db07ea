package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/iconkit/internal/adapters/config"
	"go.trai.ch/iconkit/internal/core/ports"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.Logger, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}

			l := New()
			l.SetLevel(cfg.LogLevel())
			l.SetJSON(cfg.Log.Format == config.FormatJSON)
			return l, nil
		},
	})
}
