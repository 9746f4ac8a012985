package domain

// RemoteArtifact points at a downloadable archive of a package's sources.
type RemoteArtifact struct {
	URL  string `json:"url,omitzero"  yaml:"url,omitempty"`
	Hash string `json:"hash,omitzero" yaml:"hash,omitempty"`
}

// Package is a unit of third-party code discovered by the analyzer.
// Packages are treated as immutable once loaded.
type Package struct {
	// ID is the unique identifier of the package.
	ID Identifier `json:"id" yaml:"id"`

	// DeclaredLicenses are the licenses stated in the package metadata.
	DeclaredLicenses []string `json:"declaredLicenses,omitempty" yaml:"declaredLicenses,omitempty"`

	Description string `json:"description,omitzero" yaml:"description,omitempty"`
	Homepage    string `json:"homepageUrl,omitzero" yaml:"homepageUrl,omitempty"`

	// Vcs is the VCS information as declared in the package metadata.
	Vcs VcsInfo `json:"vcs,omitzero" yaml:"vcs,omitempty"`

	// VcsProcessed is the normalized VCS information used to fetch the sources.
	VcsProcessed VcsInfo `json:"vcsProcessed,omitzero" yaml:"vcsProcessed,omitempty"`

	SourceArtifact RemoteArtifact `json:"sourceArtifact,omitzero" yaml:"sourceArtifact,omitempty"`
}

// CuratedPackage wraps a package in the analyzer result.
type CuratedPackage struct {
	Package Package `json:"package" yaml:"package"`
}
