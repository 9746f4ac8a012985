package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/scout/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/scout/internal/adapters/format"             //nolint:depguard // Wired in app layer
	"go.trai.ch/scout/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/scout/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/scout/internal/core/ports"
	"go.trai.ch/scout/internal/engine/orchestrator"
	"go.trai.ch/scout/internal/scanner"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			scanner.NodeID,
			format.NodeID,
			orchestrator.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	scanners, err := graft.Dep[*scanner.Registry](ctx)
	if err != nil {
		return nil, err
	}

	formats, err := graft.Dep[*format.Registry](ctx)
	if err != nil {
		return nil, err
	}

	orch, err := graft.Dep[*orchestrator.Orchestrator](ctx)
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

	return New(loader, scanners, formats, orch, telemetry, log), nil
}
