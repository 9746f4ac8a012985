package domain

import (
	"slices"
	"time"
)

// Severity classifies an Issue.
type Severity string

const (
	// SeverityHint marks an informational issue.
	SeverityHint Severity = "HINT"
	// SeverityWarning marks an issue that may affect the result.
	SeverityWarning Severity = "WARNING"
	// SeverityError marks an issue that prevented a result.
	SeverityError Severity = "ERROR"
)

// Issue describes a problem encountered while producing a result.
type Issue struct {
	Timestamp time.Time `json:"timestamp"          yaml:"timestamp"`
	Source    string    `json:"source"             yaml:"source"`
	Message   string    `json:"message"            yaml:"message"`
	Severity  Severity  `json:"severity,omitzero"  yaml:"severity,omitempty"`
}

// TextLocation is a line range within a file.
type TextLocation struct {
	Path      string `json:"path"      yaml:"path"`
	StartLine int    `json:"startLine" yaml:"startLine"`
	EndLine   int    `json:"endLine"   yaml:"endLine"`
}

// LicenseFinding is a license detected at a location.
type LicenseFinding struct {
	License  string       `json:"license"  yaml:"license"`
	Location TextLocation `json:"location" yaml:"location"`
}

// CopyrightFinding is a copyright statement detected at a location.
type CopyrightFinding struct {
	Statement string       `json:"statement" yaml:"statement"`
	Location  TextLocation `json:"location"  yaml:"location"`
}

// ScanSummary condenses the findings of one scan.
type ScanSummary struct {
	StartTime               time.Time          `json:"startTime"                         yaml:"startTime"`
	EndTime                 time.Time          `json:"endTime"                           yaml:"endTime"`
	FileCount               int                `json:"fileCount"                         yaml:"fileCount"`
	PackageVerificationCode string             `json:"packageVerificationCode,omitzero"  yaml:"packageVerificationCode,omitempty"`
	LicenseFindings         []LicenseFinding   `json:"licenses,omitempty"                yaml:"licenses,omitempty"`
	CopyrightFindings       []CopyrightFinding `json:"copyrights,omitempty"              yaml:"copyrights,omitempty"`
	Issues                  []Issue            `json:"issues,omitempty"                  yaml:"issues,omitempty"`
}

// LicenseIDs returns the sorted, distinct license identifiers of all findings.
func (s ScanSummary) LicenseIDs() []string {
	ids := make([]string, 0, len(s.LicenseFindings))
	for _, f := range s.LicenseFindings {
		ids = append(ids, f.License)
	}
	slices.Sort(ids)
	return slices.Compact(ids)
}

// ScannerDetails names the backend that produced a result.
type ScannerDetails struct {
	Name          string `json:"name"                    yaml:"name"`
	Version       string `json:"version,omitzero"        yaml:"version,omitempty"`
	Configuration string `json:"configuration,omitzero"  yaml:"configuration,omitempty"`
}

// Provenance records which source code was scanned.
type Provenance struct {
	VcsInfo        *VcsInfo        `json:"vcsInfo,omitempty"        yaml:"vcsInfo,omitempty"`
	SourceArtifact *RemoteArtifact `json:"sourceArtifact,omitempty" yaml:"sourceArtifact,omitempty"`
}

// ScanResult is one backend's output for one package.
type ScanResult struct {
	Provenance Provenance     `json:"provenance" yaml:"provenance"`
	Scanner    ScannerDetails `json:"scanner"    yaml:"scanner"`
	Summary    ScanSummary    `json:"summary"    yaml:"summary"`

	// RawResult is the unprocessed backend output. It is written to the
	// per-package result files only and stripped from the aggregate record.
	RawResult any `json:"rawResult,omitempty" yaml:"rawResult,omitempty"`
}

// WithoutRawResult returns a copy of the result with the raw output removed.
func (r ScanResult) WithoutRawResult() ScanResult {
	r.RawResult = nil
	return r
}

// ScanResultContainer groups all scan results for one package.
type ScanResultContainer struct {
	ID      Identifier   `json:"id"      yaml:"id"`
	Results []ScanResult `json:"results" yaml:"results"`
}

// LicenseIDs returns the union of detected license identifiers across all results.
func (c ScanResultContainer) LicenseIDs() []string {
	var ids []string
	for _, r := range c.Results {
		ids = append(ids, r.Summary.LicenseIDs()...)
	}
	slices.Sort(ids)
	return slices.Compact(ids)
}

// ProjectScanScopes records which scopes of a project were scanned and which were not.
type ProjectScanScopes struct {
	ProjectID      Identifier `json:"projectId"      yaml:"projectId"`
	ScopesToScan   []string   `json:"scopesToScan"   yaml:"scopesToScan"`
	ExcludedScopes []string   `json:"excludedScopes" yaml:"excludedScopes"`
}

// AccessStatistics are the read/hit counters of a backend's result cache.
type AccessStatistics struct {
	NumReads int `json:"numReads" yaml:"numReads"`
	NumHits  int `json:"numHits"  yaml:"numHits"`
}

// ScanRecord is the outcome of one scan run.
type ScanRecord struct {
	ScopesToScan []ProjectScanScopes   `json:"scannedScopes" yaml:"scannedScopes"`
	ScanResults  []ScanResultContainer `json:"scanResults"   yaml:"scanResults"`
	StorageStats AccessStatistics      `json:"storageStats"  yaml:"storageStats"`
}

// ScanResultsFor returns the container for the given package, if present.
func (r ScanRecord) ScanResultsFor(id Identifier) (ScanResultContainer, bool) {
	i, found := slices.BinarySearchFunc(r.ScanResults, id, func(c ScanResultContainer, target Identifier) int {
		return c.ID.Compare(target)
	})
	if !found {
		return ScanResultContainer{}, false
	}
	return r.ScanResults[i], true
}
