// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/scout/internal/adapters/config"
	_ "go.trai.ch/scout/internal/adapters/format"
	_ "go.trai.ch/scout/internal/adapters/fs"
	_ "go.trai.ch/scout/internal/adapters/logger"
	_ "go.trai.ch/scout/internal/adapters/report"
	_ "go.trai.ch/scout/internal/adapters/shell"
	_ "go.trai.ch/scout/internal/adapters/store"
	_ "go.trai.ch/scout/internal/adapters/telemetry/progrock"
	// Register app, engine and scanner nodes.
	_ "go.trai.ch/scout/internal/app"
	_ "go.trai.ch/scout/internal/engine/orchestrator"
	_ "go.trai.ch/scout/internal/scanner"
)
