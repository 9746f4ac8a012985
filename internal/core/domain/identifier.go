package domain

import (
	"cmp"
	"net/url"
	"strings"

	"go.trai.ch/zerr"
)

// unknownPathComponent replaces blank identifier components in file system paths.
const unknownPathComponent = "unknown"

// Identifier uniquely identifies a package or project by its coordinates.
// Its text form is "Type:Namespace:Name:Version", which is also how it is serialized.
type Identifier struct {
	// Type is the package manager or ecosystem (e.g., "Maven", "NPM", "Go").
	Type string

	// Namespace groups packages (e.g., a Maven groupId or an NPM scope).
	Namespace string

	// Name is the package name.
	Name string

	// Version is the package version.
	Version string
}

// ParseIdentifier parses the "Type:Namespace:Name:Version" text form.
// Missing trailing components are treated as empty.
func ParseIdentifier(s string) (Identifier, error) {
	if strings.TrimSpace(s) == "" {
		return Identifier{}, zerr.With(ErrInvalidIdentifier, "identifier", s)
	}

	parts := strings.SplitN(s, ":", 4)
	for len(parts) < 4 {
		parts = append(parts, "")
	}

	return Identifier{
		Type:      parts[0],
		Namespace: parts[1],
		Name:      parts[2],
		Version:   parts[3],
	}, nil
}

// String returns the coordinates of the identifier.
func (id Identifier) String() string {
	return id.Type + ":" + id.Namespace + ":" + id.Name + ":" + id.Version
}

// IsEmpty reports whether all components are blank.
func (id Identifier) IsEmpty() bool {
	return id == Identifier{}
}

// Compare orders identifiers by type, namespace, name and version.
func (id Identifier) Compare(other Identifier) int {
	if c := cmp.Compare(id.Type, other.Type); c != 0 {
		return c
	}
	if c := cmp.Compare(id.Namespace, other.Namespace); c != 0 {
		return c
	}
	if c := cmp.Compare(id.Name, other.Name); c != 0 {
		return c
	}
	return cmp.Compare(id.Version, other.Version)
}

// ToPath returns a relative, slash-separated path derived from the identifier.
// Every component is escaped so it forms a single path segment; blank components
// become "unknown".
func (id Identifier) ToPath() string {
	components := []string{id.Type, id.Namespace, id.Name, id.Version}
	for i, c := range components {
		components[i] = encodePathComponent(c)
	}
	return strings.Join(components, "/")
}

func encodePathComponent(c string) string {
	if strings.TrimSpace(c) == "" {
		return unknownPathComponent
	}
	escaped := url.PathEscape(c)
	// "." and ".." are valid escaped segments but must not navigate the tree.
	switch escaped {
	case ".":
		return "%2E"
	case "..":
		return "%2E%2E"
	}
	return escaped
}

// MarshalText implements encoding.TextMarshaler.
func (id Identifier) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *Identifier) UnmarshalText(text []byte) error {
	parsed, err := ParseIdentifier(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
