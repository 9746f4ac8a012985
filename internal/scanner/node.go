package scanner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/scout/internal/adapters/fs"
	"go.trai.ch/scout/internal/adapters/logger"
	"go.trai.ch/scout/internal/adapters/shell"
	"go.trai.ch/scout/internal/adapters/telemetry/progrock"
	"go.trai.ch/scout/internal/core/ports"
)

// NodeID is the unique identifier for the scanner registry Graft node.
const NodeID graft.ID = "scanner.registry"

func init() {
	graft.Register(graft.Node[*Registry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			fs.HasherNodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Registry, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			reg := NewRegistry()
			RegisterBuiltins(reg, Dependencies{
				Executor:  executor,
				Hasher:    hasher,
				Telemetry: telemetry,
				Logger:    log,
			})
			return reg, nil
		},
	})
}
