// Package format provides the serializations used for scan results and reports.
package format

import (
	"encoding/json"
	"io"
	"slices"
	"strings"

	"go.trai.ch/scout/internal/core/domain"
	"go.trai.ch/scout/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var (
	_ ports.OutputFormat = JSON{}
	_ ports.OutputFormat = YAML{}
)

// JSON encodes values as indented JSON.
type JSON struct{}

// Name returns "json".
func (JSON) Name() string { return "json" }

// Extension returns "json".
func (JSON) Extension() string { return "json" }

// Encode writes v to w as indented JSON.
func (JSON) Encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return zerr.Wrap(err, "failed to encode json")
	}
	return nil
}

// YAML encodes values as YAML with two-space indentation.
type YAML struct{}

// Name returns "yaml".
func (YAML) Name() string { return "yaml" }

// Extension returns "yml".
func (YAML) Extension() string { return "yml" }

// Encode writes v to w as YAML.
func (YAML) Encode(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return zerr.Wrap(err, "failed to encode yaml")
	}
	if err := enc.Close(); err != nil {
		return zerr.Wrap(err, "failed to flush yaml")
	}
	return nil
}

// Registry resolves output formats by name.
type Registry struct {
	formats map[string]ports.OutputFormat
}

// NewRegistry returns a registry with the built-in formats.
func NewRegistry() *Registry {
	r := &Registry{formats: make(map[string]ports.OutputFormat)}
	for _, f := range []ports.OutputFormat{JSON{}, YAML{}} {
		r.formats[f.Name()] = f
	}
	// "yml" is accepted as an alias since it is the file extension.
	r.formats["yml"] = YAML{}
	return r
}

// Resolve returns the formats with the given names, in the given order,
// skipping repeated names.
func (r *Registry) Resolve(names []string) ([]ports.OutputFormat, error) {
	formats := make([]ports.OutputFormat, 0, len(names))
	seen := make(map[string]bool, len(names))

	for _, name := range names {
		f, ok := r.formats[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, zerr.With(domain.ErrUnknownOutputFormat, "format", name)
		}
		if seen[f.Name()] {
			continue
		}
		seen[f.Name()] = true
		formats = append(formats, f)
	}

	return formats, nil
}

// Names returns the sorted canonical format names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.formats))
	for _, f := range r.formats {
		names = append(names, f.Name())
	}
	slices.Sort(names)
	return slices.Compact(names)
}
