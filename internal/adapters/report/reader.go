// Package report reads analyzer and scanner reports from disk.
package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/scout/internal/core/domain"
	"go.trai.ch/scout/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ReportReader = (*Reader)(nil)

// Reader decodes reports in JSON or YAML, chosen by file extension.
type Reader struct{}

// NewReader creates a new report reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read decodes the report at path.
func (r *Reader) Read(path string) (*domain.Report, error) {
	decode, err := decoderFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read report"), "path", path)
	}

	var report domain.Report
	if err := decode(data, &report); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse report"), "path", path)
	}

	return &report, nil
}

func decoderFor(path string) (func([]byte, *domain.Report) error, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return decodeJSON, nil
	case ".yml", ".yaml":
		return decodeYAML, nil
	default:
		return nil, zerr.With(domain.ErrUnsupportedReportFormat, "path", path)
	}
}

func decodeJSON(data []byte, report *domain.Report) error {
	return json.Unmarshal(data, report)
}

func decodeYAML(data []byte, report *domain.Report) error {
	// An empty document decodes to io.EOF; treat it as an empty report.
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	return yaml.Unmarshal(data, report)
}
