package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/scout/internal/adapters/format"
	"go.trai.ch/scout/internal/adapters/report"
	"go.trai.ch/scout/internal/adapters/store"
	"go.trai.ch/scout/internal/adapters/telemetry"
	"go.trai.ch/scout/internal/app"
	"go.trai.ch/scout/internal/core/domain"
	"go.trai.ch/scout/internal/core/ports"
	"go.trai.ch/scout/internal/core/ports/mocks"
	"go.trai.ch/scout/internal/engine/orchestrator"
	"go.trai.ch/scout/internal/scanner"
	"go.uber.org/mock/gomock"
	"gopkg.in/yaml.v3"
)

const analyzerResult = `
repository:
  vcs:
    type: git
    url: https://example.com/app.git
analyzer:
  result:
    projects:
      - id: "Go::example.com/app:1.0.0"
        scopes:
          - name: main
            dependencies:
              - id: "Go::github.com/pkg/errors:0.9.1"
          - name: test
            dependencies:
              - id: "Go::github.com/stretchr/testify:1.11.1"
    packages:
      - package:
          id: "Go::github.com/pkg/errors:0.9.1"
          declaredLicenses: [BSD-2-Clause]
      - package:
          id: "Go::github.com/stretchr/testify:1.11.1"
          declaredLicenses: [MIT]
`

type fixture struct {
	app     *app.App
	loader  *mocks.MockConfigLoader
	logger  *mocks.MockLogger
	backend *mocks.MockScanner
	input   string
	outDir  string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	loader := mocks.NewMockConfigLoader(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	backend := mocks.NewMockScanner(ctrl)
	backend.EXPECT().Name().Return("fake").AnyTimes()
	backend.EXPECT().Statistics().Return(domain.AccessStatistics{}).AnyTimes()

	scanners := scanner.NewRegistry()
	scanners.MustRegister("fake", func(scanner.Options) (ports.Scanner, error) { return backend, nil })

	tel := telemetry.NewNoOp()
	orch := orchestrator.New(report.NewReader(), store.NewStore(), tel, logger)

	dir := t.TempDir()
	input := filepath.Join(dir, "analyzer-result.yml")
	require.NoError(t, os.WriteFile(input, []byte(analyzerResult), 0o600))

	return &fixture{
		app:     app.New(loader, scanners, format.NewRegistry(), orch, tel, logger),
		loader:  loader,
		logger:  logger,
		backend: backend,
		input:   input,
		outDir:  filepath.Join(dir, "out"),
	}
}

func TestApp_Scan(t *testing.T) {
	f := newFixture(t)
	errorsPkg := domain.Identifier{Type: "Go", Name: "github.com/pkg/errors", Version: "0.9.1"}

	f.loader.EXPECT().Load("").Return(domain.DefaultScannerConfiguration(), nil)
	f.backend.EXPECT().
		Scan(gomock.Any(), gomock.Any(), f.outDir, f.outDir).
		DoAndReturn(func(_ context.Context, packages []domain.Package, _, _ string) (map[domain.Identifier][]domain.ScanResult, error) {
			// The project itself plus the dependency of the "main" scope.
			require.Len(t, packages, 2)
			return map[domain.Identifier][]domain.ScanResult{
				errorsPkg: {{
					Scanner: domain.ScannerDetails{Name: "fake"},
					Summary: domain.ScanSummary{
						LicenseFindings: []domain.LicenseFinding{{License: "BSD-2-Clause"}},
					},
					RawResult: "raw",
				}},
			}, nil
		})

	paths, err := f.app.Scan(context.Background(), app.ScanOptions{
		InputPath:     f.input,
		OutputDir:     f.outDir,
		Scanner:       "fake",
		OutputFormats: []string{"yaml", "json"},
		Scopes:        []string{"main"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(f.outDir, "scan-result.json"),
		filepath.Join(f.outDir, "scan-result.yml"),
	}, paths)

	//nolint:gosec // Test file path
	data, err := os.ReadFile(paths[1])
	require.NoError(t, err)

	var written domain.Report
	require.NoError(t, yaml.Unmarshal(data, &written))
	require.NotNil(t, written.Analyzer)
	require.NotNil(t, written.Scanner)
	assert.Equal(t, "https://example.com/app.git", written.Repository.Vcs.URL)
	assert.Equal(t, "fake", written.Scanner.Config.Scanner)
	assert.Equal(t, []string{"main"}, written.Scanner.Config.Scopes)

	container, ok := written.Scanner.Results.ScanResultsFor(errorsPkg)
	require.True(t, ok)
	assert.Equal(t, []string{"BSD-2-Clause"}, container.LicenseIDs())
	assert.Nil(t, container.Results[0].RawResult)

	// Per-package files keep the raw output.
	perPackage := filepath.Join(f.outDir, "scanResults", "Go", "unknown", "github.com%2Fpkg%2Ferrors", "0.9.1", "scan-results.yml")
	//nolint:gosec // Test file path
	raw, err := os.ReadFile(perPackage)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "rawResult: raw")
}

func TestApp_Scan_Debug(t *testing.T) {
	f := newFixture(t)

	f.logger.EXPECT().SetLevel(domain.LogLevelDebug)
	f.loader.EXPECT().Load("").Return(domain.ScannerConfiguration{Scanner: "missing"}, nil)

	_, err := f.app.Scan(context.Background(), app.ScanOptions{
		InputPath: f.input,
		OutputDir: f.outDir,
		Debug:     true,
	})
	assert.ErrorContains(t, err, domain.ErrUnknownScanner.Error())
}

func TestApp_Scan_ConfigFile(t *testing.T) {
	f := newFixture(t)
	cfgPath := filepath.Join(t.TempDir(), "scout.yaml")

	f.loader.EXPECT().Load(cfgPath).Return(domain.ScannerConfiguration{
		Scanner:       "fake",
		OutputFormats: []string{"json"},
	}, nil)
	f.backend.EXPECT().Scan(gomock.Any(), gomock.Any(), f.outDir, "/tmp/sources").Return(nil, nil)

	paths, err := f.app.Scan(context.Background(), app.ScanOptions{
		InputPath:   f.input,
		OutputDir:   f.outDir,
		ConfigPath:  cfgPath,
		DownloadDir: "/tmp/sources",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(f.outDir, "scan-result.json")}, paths)
}

func TestApp_Scan_Errors(t *testing.T) {
	tests := []struct {
		name    string
		opts    func(f *fixture) app.ScanOptions
		setup   func(f *fixture)
		wantErr string
	}{
		{
			name:    "missing input",
			opts:    func(f *fixture) app.ScanOptions { return app.ScanOptions{OutputDir: f.outDir} },
			wantErr: domain.ErrNoInputFile.Error(),
		},
		{
			name:    "missing output",
			opts:    func(f *fixture) app.ScanOptions { return app.ScanOptions{InputPath: f.input} },
			wantErr: domain.ErrNoOutputDir.Error(),
		},
		{
			name: "config failure",
			opts: func(f *fixture) app.ScanOptions {
				return app.ScanOptions{InputPath: f.input, OutputDir: f.outDir, ConfigPath: "broken.yaml"}
			},
			setup: func(f *fixture) {
				f.loader.EXPECT().Load("broken.yaml").Return(domain.ScannerConfiguration{}, assert.AnError)
			},
			wantErr: "failed to load configuration",
		},
		{
			name: "unknown format",
			opts: func(f *fixture) app.ScanOptions {
				return app.ScanOptions{InputPath: f.input, OutputDir: f.outDir, Scanner: "fake", OutputFormats: []string{"xml"}}
			},
			setup: func(f *fixture) {
				f.loader.EXPECT().Load("").Return(domain.DefaultScannerConfiguration(), nil)
			},
			wantErr: domain.ErrUnknownOutputFormat.Error(),
		},
		{
			name: "input is a directory",
			opts: func(f *fixture) app.ScanOptions {
				return app.ScanOptions{InputPath: filepath.Dir(f.input), OutputDir: f.outDir, Scanner: "fake"}
			},
			setup: func(f *fixture) {
				f.loader.EXPECT().Load("").Return(domain.DefaultScannerConfiguration(), nil)
			},
			wantErr: domain.ErrInputNotRegularFile.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.setup != nil {
				tt.setup(f)
			}

			_, err := f.app.Scan(context.Background(), tt.opts(f))
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestApp_ScannerNames(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, []string{"fake"}, f.app.ScannerNames())
}
