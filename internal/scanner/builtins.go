package scanner

import (
	"go.trai.ch/scout/internal/adapters/exec"
	"go.trai.ch/scout/internal/core/ports"
)

// Dependencies are the collaborators shared by the built-in backends.
type Dependencies struct {
	Executor  ports.Executor
	Hasher    ports.Hasher
	Telemetry ports.Telemetry
	Logger    ports.Logger
}

// RegisterBuiltins installs every backend shipped with scout.
func RegisterBuiltins(reg *Registry, deps Dependencies) {
	if reg == nil {
		return
	}

	reg.MustRegister(exec.Name, func(opts Options) (ports.Scanner, error) {
		parsed, err := exec.ParseOptions(opts)
		if err != nil {
			return nil, err
		}
		return exec.New(parsed, deps.Executor, deps.Hasher, deps.Telemetry, deps.Logger), nil
	})
}
