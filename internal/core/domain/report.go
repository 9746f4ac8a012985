package domain

import "time"

// Environment describes the machine and tool a run was executed with.
type Environment struct {
	ToolVersion string            `json:"toolVersion"          yaml:"toolVersion"`
	GoVersion   string            `json:"goVersion,omitzero"   yaml:"goVersion,omitempty"`
	OS          string            `json:"os"                   yaml:"os"`
	Arch        string            `json:"arch,omitzero"        yaml:"arch,omitempty"`
	Processors  int               `json:"processors,omitzero"  yaml:"processors,omitempty"`
	Variables   map[string]string `json:"variables,omitempty"  yaml:"variables,omitempty"`
}

// AnalyzerResult is the dependency graph produced by a prior analysis.
type AnalyzerResult struct {
	Projects []Project        `json:"projects"           yaml:"projects"`
	Packages []CuratedPackage `json:"packages,omitempty" yaml:"packages,omitempty"`
}

// AnalyzerRun wraps an AnalyzerResult with the metadata of the run that produced it.
// Environment and Config are kept verbatim.
type AnalyzerRun struct {
	StartTime   time.Time      `json:"startTime,omitzero"   yaml:"startTime,omitempty"`
	EndTime     time.Time      `json:"endTime,omitzero"     yaml:"endTime,omitempty"`
	Environment map[string]any `json:"environment,omitempty" yaml:"environment,omitempty"`
	Config      map[string]any `json:"config,omitempty"      yaml:"config,omitempty"`
	Result      AnalyzerResult `json:"result"               yaml:"result"`
}

// Repository describes the analyzed repository. It is passed through unchanged.
type Repository struct {
	Vcs                VcsInfo            `json:"vcs,omitzero"                 yaml:"vcs,omitempty"`
	VcsProcessed       VcsInfo            `json:"vcsProcessed,omitzero"        yaml:"vcsProcessed,omitempty"`
	NestedRepositories map[string]VcsInfo `json:"nestedRepositories,omitempty" yaml:"nestedRepositories,omitempty"`
	Config             map[string]any     `json:"config,omitempty"             yaml:"config,omitempty"`
}

// ScannerRun wraps a ScanRecord with the metadata of the scan run.
type ScannerRun struct {
	ID          string               `json:"id"          yaml:"id"`
	StartTime   time.Time            `json:"startTime"   yaml:"startTime"`
	EndTime     time.Time            `json:"endTime"     yaml:"endTime"`
	Environment Environment          `json:"environment" yaml:"environment"`
	Config      ScannerConfiguration `json:"config"      yaml:"config"`
	Results     ScanRecord           `json:"results"     yaml:"results"`
}

// Report is the top-level document read from and written to disk.
type Report struct {
	Repository Repository   `json:"repository"         yaml:"repository"`
	Analyzer   *AnalyzerRun `json:"analyzer,omitempty" yaml:"analyzer,omitempty"`
	Scanner    *ScannerRun  `json:"scanner,omitempty"  yaml:"scanner,omitempty"`
}
