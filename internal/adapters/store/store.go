// Package store persists per-package scan results on the file system.
package store

import (
	"bytes"
	"os"
	"path/filepath"

	"go.trai.ch/scout/internal/core/domain"
	"go.trai.ch/scout/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// ResultsDir is the directory below the output directory holding per-package results.
	ResultsDir = "scanResults"

	resultsBaseName = "scan-results"
)

var _ ports.ResultStore = (*Store)(nil)

// Store implements ports.ResultStore with one file per package and format.
type Store struct{}

// NewStore creates a new result store.
func NewStore() *Store {
	return &Store{}
}

// PathFor returns the file a container is written to for the given format.
func PathFor(outputDir string, format ports.OutputFormat, id domain.Identifier) string {
	return filepath.Join(
		outputDir,
		ResultsDir,
		filepath.FromSlash(id.ToPath()),
		resultsBaseName+"."+format.Extension(),
	)
}

// Put writes the container once per format. Files are replaced atomically.
func (s *Store) Put(
	outputDir string,
	formats []ports.OutputFormat,
	container domain.ScanResultContainer,
) ([]string, error) {
	paths := make([]string, 0, len(formats))

	for _, format := range formats {
		path := PathFor(outputDir, format, container.ID)

		var buf bytes.Buffer
		if err := format.Encode(&buf, container); err != nil {
			return paths, zerr.With(zerr.Wrap(err, "failed to encode scan results"), "package", container.ID.String())
		}

		if err := writeFile(path, buf.Bytes()); err != nil {
			return paths, zerr.With(err, "package", container.ID.String())
		}

		paths = append(paths, path)
	}

	return paths, nil
}

func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create results directory"), "path", dir)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return zerr.Wrap(err, "failed to create temporary results file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, "failed to write results file")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, "failed to close results file")
	}

	//nolint:gosec // Path is derived from an escaped identifier below the output directory
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, "failed to set results file permissions")
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, "failed to move results file into place"), "path", path)
	}

	return nil
}
