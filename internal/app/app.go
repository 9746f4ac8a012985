// Package app implements the application layer for scout.
package app

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/scout/internal/adapters/config"
	"go.trai.ch/scout/internal/adapters/format"
	"go.trai.ch/scout/internal/core/domain"
	"go.trai.ch/scout/internal/core/ports"
	"go.trai.ch/scout/internal/engine/orchestrator"
	"go.trai.ch/scout/internal/scanner"
	"go.trai.ch/zerr"
)

// ReportBaseName is the file name, without extension, of the written report.
const ReportBaseName = "scan-result"

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	scanners     *scanner.Registry
	formats      *format.Registry
	orchestrator *orchestrator.Orchestrator
	telemetry    ports.Telemetry
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	scanners *scanner.Registry,
	formats *format.Registry,
	orch *orchestrator.Orchestrator,
	telemetry ports.Telemetry,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		scanners:     scanners,
		formats:      formats,
		orchestrator: orch,
		telemetry:    telemetry,
		logger:       log,
	}
}

// ScanOptions configuration for the Scan method.
type ScanOptions struct {
	// InputPath is the analyzer result to scan.
	InputPath string
	// OutputDir receives per-package results and the report.
	OutputDir string
	// ConfigPath is the configuration file. Empty means scout.yaml if present.
	ConfigPath string
	// Debug enables debug logging.
	Debug bool

	// The remaining fields override the configuration file when set.
	DownloadDir   string
	Scanner       string
	OutputFormats []string
	Scopes        []string
}

// Scan scans the analyzer result and writes the report once per output format.
// It returns the paths of the written reports.
func (a *App) Scan(ctx context.Context, opts ScanOptions) (paths []string, err error) {
	if opts.Debug {
		a.logger.SetLevel(domain.LogLevelDebug)
	}

	if opts.InputPath == "" {
		return nil, domain.ErrNoInputFile
	}
	if opts.OutputDir == "" {
		return nil, domain.ErrNoOutputDir
	}

	cfg, err := a.loadConfiguration(opts)
	if err != nil {
		return nil, err
	}

	backend, err := a.scanners.Resolve(cfg.Scanner, cfg.OptionsFor(cfg.Scanner))
	if err != nil {
		return nil, err
	}

	formats, err := a.formats.Resolve(cfg.OutputFormats)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(opts.OutputDir, 0o750); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create output directory"), "path", opts.OutputDir)
	}

	defer func() {
		if closeErr := a.telemetry.Close(); closeErr != nil {
			a.logger.Warn("failed to close telemetry: " + closeErr.Error())
		}
	}()

	report, err := a.orchestrator.ScanFile(ctx, backend, opts.InputPath, orchestrator.Request{
		OutputDir:   opts.OutputDir,
		DownloadDir: cfg.DownloadDir,
		Formats:     formats,
		Config:      cfg,
	})
	if err != nil {
		return nil, err
	}

	for _, f := range formats {
		path := filepath.Join(opts.OutputDir, ReportBaseName+"."+f.Extension())
		if err := writeReport(path, f, report); err != nil {
			return paths, err
		}
		a.logger.Info("Wrote scan result to " + path)
		paths = append(paths, path)
	}

	return paths, nil
}

// ScannerNames returns the names of the available scanner backends.
func (a *App) ScannerNames() []string {
	return a.scanners.Names()
}

func (a *App) loadConfiguration(opts ScanOptions) (domain.ScannerConfiguration, error) {
	path := opts.ConfigPath
	if path == "" {
		if _, err := os.Stat(config.DefaultFilename); err == nil {
			path = config.DefaultFilename
		} else if !errors.Is(err, fs.ErrNotExist) {
			return domain.ScannerConfiguration{}, zerr.Wrap(err, "failed to load configuration")
		}
	}

	cfg, err := a.configLoader.Load(path)
	if err != nil {
		return domain.ScannerConfiguration{}, zerr.Wrap(err, "failed to load configuration")
	}

	return config.Merge(cfg, domain.ScannerConfiguration{
		Scanner:       opts.Scanner,
		OutputFormats: opts.OutputFormats,
		Scopes:        opts.Scopes,
		DownloadDir:   opts.DownloadDir,
	}), nil
}

func writeReport(path string, f ports.OutputFormat, report *domain.Report) error {
	var buf bytes.Buffer
	if err := f.Encode(&buf, report); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to encode scan result"), "format", f.Name())
	}

	//nolint:gosec // Report is meant to be readable by other tools
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write scan result"), "path", path)
	}
	return nil
}
