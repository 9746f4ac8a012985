package config

// Scoutfile represents the structure of the scout.yaml configuration file.
type Scoutfile struct {
	Version string     `yaml:"version"`
	Scanner ScannerDTO `yaml:"scanner"`
}

// ScannerDTO represents the scanner section of the configuration.
type ScannerDTO struct {
	Name          string                    `yaml:"name"`
	OutputFormats []string                  `yaml:"outputFormats"`
	Scopes        []string                  `yaml:"scopes"`
	DownloadDir   string                    `yaml:"downloadDir"`
	Options       map[string]map[string]any `yaml:"options"`
}
