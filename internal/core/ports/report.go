package ports

import (
	"io"

	"go.trai.ch/scout/internal/core/domain"
)

// ReportReader loads a previously written report.
//
//go:generate go run go.uber.org/mock/mockgen -source=report.go -destination=mocks/mock_report.go -package=mocks
type ReportReader interface {
	// Read decodes the report stored at path. The format is chosen by file extension.
	Read(path string) (*domain.Report, error)
}

// OutputFormat serializes values into one file format.
type OutputFormat interface {
	// Name is the identifier used in configuration (e.g., "json").
	Name() string

	// Extension is the file extension without the leading dot.
	Extension() string

	// Encode writes v to w.
	Encode(w io.Writer, v any) error
}

// ResultStore persists per-package scan results.
type ResultStore interface {
	// Put writes the container below outputDir once per format and returns the written paths.
	Put(outputDir string, formats []OutputFormat, container domain.ScanResultContainer) ([]string, error)
}
