package orchestrator

import (
	"time"

	"go.trai.ch/scout/internal/core/domain"
)

// SetRuntime replaces the clock, run id generator and environment probe.
// This is exported for testing purposes only.
func (o *Orchestrator) SetRuntime(now func() time.Time, runID func() string, env func() domain.Environment) {
	o.now = now
	o.newRunID = runID
	o.environment = env
}
