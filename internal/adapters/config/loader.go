// Package config provides the configuration loader for scout.
package config

import (
	"os"
	"slices"
	"strings"

	"go.trai.ch/scout/internal/core/domain"
	"go.trai.ch/scout/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up in the working directory.
const DefaultFilename = "scout.yaml"

// supportedVersion is the only schema version understood by the loader.
const supportedVersion = "1"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the configuration from the given path. An empty path yields the defaults.
func (l *Loader) Load(path string) (domain.ScannerConfiguration, error) {
	if path == "" {
		return domain.DefaultScannerConfiguration(), nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return domain.ScannerConfiguration{}, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var scoutfile Scoutfile
	if err := yaml.Unmarshal(data, &scoutfile); err != nil {
		return domain.ScannerConfiguration{}, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	if scoutfile.Version != "" && scoutfile.Version != supportedVersion {
		return domain.ScannerConfiguration{}, zerr.With(
			zerr.With(zerr.New("unsupported config version"), "version", scoutfile.Version),
			"path", path,
		)
	}

	cfg := toConfiguration(scoutfile.Scanner)
	l.logger.Debug("loaded configuration from " + path)
	return cfg, nil
}

func toConfiguration(dto ScannerDTO) domain.ScannerConfiguration {
	cfg := domain.DefaultScannerConfiguration()

	if name := strings.TrimSpace(dto.Name); name != "" {
		cfg.Scanner = name
	}
	if formats := canonicalizeStrings(dto.OutputFormats); len(formats) > 0 {
		cfg.OutputFormats = formats
	}
	cfg.Scopes = canonicalizeStrings(dto.Scopes)
	cfg.DownloadDir = strings.TrimSpace(dto.DownloadDir)
	cfg.Options = dto.Options

	return cfg
}

// canonicalizeStrings trims, sorts and deduplicates the list, dropping blanks.
func canonicalizeStrings(strs []string) []string {
	if len(strs) == 0 {
		return nil
	}

	res := make([]string, 0, len(strs))
	for _, s := range strs {
		if s = strings.TrimSpace(s); s != "" {
			res = append(res, s)
		}
	}
	slices.Sort(res)
	return slices.Compact(res)
}

// Merge applies non-empty overrides on top of cfg and returns the result.
func Merge(cfg domain.ScannerConfiguration, overrides domain.ScannerConfiguration) domain.ScannerConfiguration {
	if name := strings.TrimSpace(overrides.Scanner); name != "" {
		cfg.Scanner = name
	}
	if formats := canonicalizeStrings(overrides.OutputFormats); len(formats) > 0 {
		cfg.OutputFormats = formats
	}
	if scopes := canonicalizeStrings(overrides.Scopes); len(scopes) > 0 {
		cfg.Scopes = scopes
	}
	if dir := strings.TrimSpace(overrides.DownloadDir); dir != "" {
		cfg.DownloadDir = dir
	}
	return cfg
}
