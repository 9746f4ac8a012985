package domain

const (
	// DefaultScanner is the backend used when none is configured.
	DefaultScanner = "exec"

	// DefaultOutputFormat is the serialization used when none is configured.
	DefaultOutputFormat = "yaml"
)

// ScannerConfiguration is the effective configuration of a scan run.
type ScannerConfiguration struct {
	// Scanner is the registered name of the backend to use.
	Scanner string `json:"scanner" yaml:"scanner"`

	// OutputFormats lists the serializations written for results and the report.
	OutputFormats []string `json:"outputFormats" yaml:"outputFormats"`

	// Scopes restricts scanning to the named dependency scopes. Empty means all.
	Scopes []string `json:"scopes,omitempty" yaml:"scopes,omitempty"`

	// DownloadDir is where backends place source code. Empty means the output directory.
	DownloadDir string `json:"downloadDir,omitzero" yaml:"downloadDir,omitempty"`

	// Options holds backend-specific settings keyed by scanner name.
	Options map[string]map[string]any `json:"options,omitempty" yaml:"options,omitempty"`
}

// DefaultScannerConfiguration returns the configuration used without a config file.
func DefaultScannerConfiguration() ScannerConfiguration {
	return ScannerConfiguration{
		Scanner:       DefaultScanner,
		OutputFormats: []string{DefaultOutputFormat},
	}
}

// OptionsFor returns the options of the named scanner, never nil.
func (c ScannerConfiguration) OptionsFor(scanner string) map[string]any {
	if opts, ok := c.Options[scanner]; ok && opts != nil {
		return opts
	}
	return map[string]any{}
}
