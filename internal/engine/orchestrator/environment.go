package orchestrator

import (
	"os"
	"runtime"
	"strings"

	"go.trai.ch/scout/internal/build"
	"go.trai.ch/scout/internal/core/domain"
)

// envPrefix selects the process environment variables recorded in a run.
const envPrefix = "SCOUT_"

// CurrentEnvironment describes the running process.
func CurrentEnvironment() domain.Environment {
	vars := make(map[string]string)
	for _, entry := range os.Environ() {
		k, v, ok := strings.Cut(entry, "=")
		if ok && strings.HasPrefix(k, envPrefix) {
			vars[k] = v
		}
	}

	return domain.Environment{
		ToolVersion: build.Version,
		GoVersion:   runtime.Version(),
		OS:          runtime.GOOS,
		Arch:        runtime.GOARCH,
		Processors:  runtime.NumCPU(),
		Variables:   vars,
	}
}
