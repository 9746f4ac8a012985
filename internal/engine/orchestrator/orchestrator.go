// Package orchestrator selects the packages of an analyzer result to scan, delegates
// the scan to a backend and assembles the scan record into the report.
package orchestrator

import (
	"context"
	"errors"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/scout/internal/core/domain"
	"go.trai.ch/scout/internal/core/ports"
	"go.trai.ch/zerr"
)

// Request describes one scan run.
type Request struct {
	// OutputDir receives the per-package result files.
	OutputDir string

	// DownloadDir is handed to the backend for source code. Empty means OutputDir.
	DownloadDir string

	// Formats are the serializations written for every package.
	Formats []ports.OutputFormat

	// Config is the effective configuration recorded in the report. Its Scopes
	// field is the scope filter.
	Config domain.ScannerConfiguration
}

// Orchestrator coordinates a single scan run.
type Orchestrator struct {
	reader    ports.ReportReader
	store     ports.ResultStore
	telemetry ports.Telemetry
	logger    ports.Logger

	now         func() time.Time
	newRunID    func() string
	environment func() domain.Environment
}

// New creates a new Orchestrator.
func New(
	reader ports.ReportReader,
	store ports.ResultStore,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		reader:      reader,
		store:       store,
		telemetry:   telemetry,
		logger:      logger,
		now:         time.Now,
		newRunID:    uuid.NewString,
		environment: CurrentEnvironment,
	}
}

// ScanFile reads the analyzer report at inputPath and scans it.
func (o *Orchestrator) ScanFile(
	ctx context.Context,
	scanner ports.Scanner,
	inputPath string,
	req Request,
) (*domain.Report, error) {
	info, err := os.Stat(inputPath)
	if err != nil || !info.Mode().IsRegular() {
		return nil, zerr.With(domain.ErrInputNotRegularFile, "path", inputPath)
	}

	report, err := o.reader.Read(inputPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read analyzer result")
	}

	return o.Scan(ctx, scanner, report, req)
}

// Scan runs the backend over the packages selected from report and returns a new
// report carrying the scan record. The repository and analyzer sections of the
// input are passed through unchanged.
func (o *Orchestrator) Scan(
	ctx context.Context,
	scanner ports.Scanner,
	report *domain.Report,
	req Request,
) (*domain.Report, error) {
	if report == nil || report.Analyzer == nil {
		return nil, domain.ErrMissingAnalyzerResult
	}

	startTime := o.now()
	analyzer := report.Analyzer.Result
	filter := req.Config.Scopes

	groups := domain.ConsolidateProjectPackagesByVcs(analyzer.Projects)
	scanScopes := ComputeProjectScanScopes(analyzer.Projects, filter)
	packages := PackagesToScan(analyzer, domain.References(groups), filter)

	downloadDir := req.DownloadDir
	if downloadDir == "" {
		downloadDir = req.OutputDir
	}

	o.logger.Info("Scanning " + pluralize(len(packages), "package") + " with " + scanner.Name())

	results, err := o.runBackend(ctx, scanner, packages, req.OutputDir, downloadDir)
	if err != nil {
		return nil, err
	}

	containers, err := o.writeResults(ctx, packages, results, req)
	if err != nil {
		return nil, err
	}

	containers = attachDuplicates(containers, groups)

	run := &domain.ScannerRun{
		ID:          o.newRunID(),
		StartTime:   startTime,
		EndTime:     o.now(),
		Environment: o.environment(),
		Config:      req.Config,
		Results: domain.ScanRecord{
			ScopesToScan: scanScopes,
			ScanResults:  containers,
			StorageStats: scanner.Statistics(),
		},
	}

	return &domain.Report{
		Repository: report.Repository,
		Analyzer:   report.Analyzer,
		Scanner:    run,
	}, nil
}

func (o *Orchestrator) runBackend(
	ctx context.Context,
	scanner ports.Scanner,
	packages []domain.Package,
	outputDir, downloadDir string,
) (map[domain.Identifier][]domain.ScanResult, error) {
	ctx, vertex := o.telemetry.Record(ctx, "scan with "+scanner.Name())

	results, err := scanner.Scan(ctx, packages, outputDir, downloadDir)
	if err != nil {
		err = errors.Join(domain.ErrScanFailed, err)
	}
	vertex.Complete(err)

	return results, err
}

// writeResults persists one container per scanned package and returns the
// containers with raw backend output removed, ordered by identifier.
func (o *Orchestrator) writeResults(
	ctx context.Context,
	packages []domain.Package,
	results map[domain.Identifier][]domain.ScanResult,
	req Request,
) ([]domain.ScanResultContainer, error) {
	_, vertex := o.telemetry.Record(ctx, "write scan results")

	containers := make([]domain.ScanResultContainer, 0, len(packages))
	for _, pkg := range packages {
		container := domain.ScanResultContainer{
			ID:      pkg.ID,
			Results: results[pkg.ID],
		}
		if container.Results == nil {
			container.Results = []domain.ScanResult{}
		}

		if _, err := o.store.Put(req.OutputDir, req.Formats, container); err != nil {
			err = zerr.Wrap(err, "failed to write scan results")
			vertex.Complete(err)
			return nil, err
		}

		o.logger.Debug("Declared licenses for '" + pkg.ID.String() + "': " + strings.Join(pkg.DeclaredLicenses, ", "))
		o.logger.Debug("Detected licenses for '" + pkg.ID.String() + "': " + strings.Join(container.LicenseIDs(), ", "))

		containers = append(containers, stripRawResults(container))
	}
	vertex.Complete(nil)

	return containers, nil
}

func stripRawResults(container domain.ScanResultContainer) domain.ScanResultContainer {
	stripped := make([]domain.ScanResult, 0, len(container.Results))
	for _, r := range container.Results {
		stripped = append(stripped, r.WithoutRawResult())
	}
	container.Results = stripped
	return container
}

// attachDuplicates adds a copy of each reference container under the id of every
// duplicate in its group. Containers must already be stripped.
func attachDuplicates(
	containers []domain.ScanResultContainer,
	groups []domain.PackageGroup,
) []domain.ScanResultContainer {
	byID := make(map[domain.Identifier]int, len(containers))
	for i, c := range containers {
		byID[c.ID] = i
	}

	for _, group := range groups {
		idx, ok := byID[group.Reference.ID]
		if !ok {
			continue
		}
		reference := containers[idx]

		for _, dup := range group.Duplicates {
			copied := domain.ScanResultContainer{
				ID:      dup.ID,
				Results: slices.Clone(reference.Results),
			}
			if i, exists := byID[dup.ID]; exists {
				containers[i] = copied
				continue
			}
			byID[dup.ID] = len(containers)
			containers = append(containers, copied)
		}
	}

	slices.SortFunc(containers, func(a, b domain.ScanResultContainer) int {
		return a.ID.Compare(b.ID)
	})

	return containers
}

func pluralize(n int, noun string) string {
	s := strconv.Itoa(n) + " " + noun
	if n != 1 {
		s += "s"
	}
	return s
}
