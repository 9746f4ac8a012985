package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/scout/internal/adapters/config"
	"go.trai.ch/scout/internal/core/domain"
	"go.trai.ch/scout/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.DefaultFilename)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoad_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	path := writeConfig(t, `
version: "1"
scanner:
  name: exec
  outputFormats: ["yaml", "json", "json"]
  scopes: ["runtime", " compile ", ""]
  downloadDir: /tmp/sources
  options:
    exec:
      command: ["scancode", "--json", "-"]
      parallelism: 2
`)

	cfg, err := config.NewLoader(mockLogger).Load(path)
	require.NoError(t, err)

	assert.Equal(t, "exec", cfg.Scanner)
	assert.Equal(t, []string{"json", "yaml"}, cfg.OutputFormats)
	assert.Equal(t, []string{"compile", "runtime"}, cfg.Scopes)
	assert.Equal(t, "/tmp/sources", cfg.DownloadDir)

	opts := cfg.OptionsFor("exec")
	assert.Equal(t, 2, opts["parallelism"])
	assert.Equal(t, []any{"scancode", "--json", "-"}, opts["command"])
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	cfg, err := config.NewLoader(mockLogger).Load("")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultScannerConfiguration(), cfg)
}

func TestLoad_MinimalFileKeepsDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	cfg, err := config.NewLoader(mockLogger).Load(writeConfig(t, "version: \"1\"\n"))
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultScanner, cfg.Scanner)
	assert.Equal(t, []string{domain.DefaultOutputFormat}, cfg.OutputFormats)
	assert.Empty(t, cfg.Scopes)
	assert.Empty(t, cfg.OptionsFor("exec"))
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		message string
	}{
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") },
			message: "failed to read config file",
		},
		{
			name:    "invalid yaml",
			path:    func(t *testing.T) string { return writeConfig(t, "scanner: [unclosed") },
			message: "failed to parse config file",
		},
		{
			name:    "unsupported version",
			path:    func(t *testing.T) string { return writeConfig(t, "version: \"2\"\n") },
			message: "unsupported config version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockLogger := mocks.NewMockLogger(ctrl)

			_, err := config.NewLoader(mockLogger).Load(tt.path(t))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestMerge(t *testing.T) {
	base := domain.ScannerConfiguration{
		Scanner:       "exec",
		OutputFormats: []string{"yaml"},
		Scopes:        []string{"compile"},
		DownloadDir:   "/from/file",
	}

	t.Run("empty overrides keep file values", func(t *testing.T) {
		assert.Equal(t, base, config.Merge(base, domain.ScannerConfiguration{}))
	})

	t.Run("overrides win", func(t *testing.T) {
		merged := config.Merge(base, domain.ScannerConfiguration{
			Scanner:       "other",
			OutputFormats: []string{"json"},
			Scopes:        []string{"test", "runtime"},
			DownloadDir:   "/from/flag",
		})

		assert.Equal(t, "other", merged.Scanner)
		assert.Equal(t, []string{"json"}, merged.OutputFormats)
		assert.Equal(t, []string{"runtime", "test"}, merged.Scopes)
		assert.Equal(t, "/from/flag", merged.DownloadDir)
	})
}
