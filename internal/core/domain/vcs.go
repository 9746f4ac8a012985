package domain

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// VcsInfo describes where the source code of a package lives in version control.
type VcsInfo struct {
	Type     string `json:"type,omitzero"     yaml:"type,omitempty"`
	URL      string `json:"url,omitzero"      yaml:"url,omitempty"`
	Revision string `json:"revision,omitzero" yaml:"revision,omitempty"`
	Path     string `json:"path,omitzero"     yaml:"path,omitempty"`
}

// IsEmpty reports whether the VCS information carries no repository URL.
func (v VcsInfo) IsEmpty() bool {
	return strings.TrimSpace(v.URL) == ""
}

// Normalize returns a copy with surrounding whitespace removed, the VCS type
// lower-cased, and a trailing "/" or ".git" stripped from the URL.
func (v VcsInfo) Normalize() VcsInfo {
	u := strings.TrimSpace(v.URL)
	u = strings.TrimSuffix(u, "/")
	u = strings.TrimSuffix(u, ".git")

	return VcsInfo{
		Type:     strings.ToLower(strings.TrimSpace(v.Type)),
		URL:      u,
		Revision: strings.TrimSpace(v.Revision),
		Path:     strings.Trim(strings.TrimSpace(v.Path), "/"),
	}
}

// Fingerprint returns a deterministic hash of the normalized URL, revision and path.
// Two VcsInfo values with the same fingerprint point at the same source tree; the
// VCS type is not part of it.
func (v VcsInfo) Fingerprint() string {
	n := v.Normalize()

	hasher := xxhash.New()
	for _, field := range []string{n.URL, n.Revision, n.Path} {
		_, _ = hasher.WriteString(field)
		_, _ = hasher.Write([]byte{0})
	}

	return fmt.Sprintf("%016x", hasher.Sum64())
}
