package orchestrator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/scout/internal/adapters/logger"
	"go.trai.ch/scout/internal/adapters/report"
	"go.trai.ch/scout/internal/adapters/store"
	"go.trai.ch/scout/internal/adapters/telemetry/progrock"
	"go.trai.ch/scout/internal/core/ports"
)

// NodeID is the unique identifier for the orchestrator Graft node.
const NodeID graft.ID = "engine.orchestrator"

func init() {
	graft.Register(graft.Node[*Orchestrator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			report.NodeID,
			store.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Orchestrator, error) {
			reader, err := graft.Dep[ports.ReportReader](ctx)
			if err != nil {
				return nil, err
			}
			resultStore, err := graft.Dep[ports.ResultStore](ctx)
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
			return New(reader, resultStore, telemetry, log), nil
		},
	})
}
