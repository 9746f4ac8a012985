// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/scout/internal/core/domain"
)

// Scanner is a pluggable license and copyright detection backend.
//
// Implementations own any concurrency, caching and failure recovery. A failure
// for a single package must be represented inside the returned results (for
// example as an Issue, or as an empty result list) rather than as an error.
//
//go:generate go run go.uber.org/mock/mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type Scanner interface {
	// Name returns the registered name of the backend.
	Name() string

	// Scan scans the given packages and returns their results keyed by package id.
	// Source code may be placed below downloadDir; outputDir receives backend artifacts.
	// An error means the backend could not run at all.
	Scan(
		ctx context.Context,
		packages []domain.Package,
		outputDir, downloadDir string,
	) (map[domain.Identifier][]domain.ScanResult, error)

	// Statistics returns the access counters of the backend's result cache.
	Statistics() domain.AccessStatistics
}
