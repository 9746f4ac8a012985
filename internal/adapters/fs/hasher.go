package fs

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/scout/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes verification codes for scanned source trees.
type Hasher struct {
	walker  *Walker
	ignores []string
}

// NewHasher creates a new Hasher. Files matching ignores do not contribute to codes.
func NewHasher(walker *Walker, ignores ...string) *Hasher {
	return &Hasher{walker: walker, ignores: ignores}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}

// ComputeVerificationCode hashes the contents of every file below root.
//
// The per-file hashes are sorted before being combined, so the code depends only on
// file contents and not on file names or walk order. An empty tree yields the code of
// the empty input and a file count of zero.
func (h *Hasher) ComputeVerificationCode(root string) (string, int, error) {
	info, err := os.Stat(root)
	if err != nil {
		return "", 0, zerr.With(zerr.Wrap(err, "failed to stat source tree"), "path", root)
	}
	if !info.IsDir() {
		return "", 0, zerr.With(zerr.New("source tree is not a directory"), "path", root)
	}

	var fileHashes []string
	for path := range h.walker.WalkFiles(root, h.ignores) {
		hash, err := h.ComputeFileHash(path)
		if err != nil {
			return "", 0, err
		}
		fileHashes = append(fileHashes, fmt.Sprintf("%016x", hash))
	}
	slices.Sort(fileHashes)

	hasher := xxhash.New()
	for _, fh := range fileHashes {
		_, _ = hasher.WriteString(fh)
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), len(fileHashes), nil
}
