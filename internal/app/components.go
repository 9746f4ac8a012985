package app

import "go.trai.ch/scout/internal/core/ports"

// Components holds the application dependencies needed by the entry point.
type Components struct {
	App    *App
	Logger ports.Logger
}
