package ports

import (
	"context"
	"io"

	"go.trai.ch/scout/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records progress of units of work.
type Telemetry interface {
	// Record starts a new vertex with the given name.
	Record(ctx context.Context, name string) (context.Context, Vertex)

	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents a unit of work being recorded.
type Vertex interface {
	// Stdout returns a writer for standard output of the work.
	Stdout() io.Writer

	// Stderr returns a writer for error output of the work.
	Stderr() io.Writer

	// Log records a message associated with this vertex.
	Log(level domain.LogLevel, msg string)

	// Complete marks the vertex as finished, successfully if err is nil.
	Complete(err error)
}
