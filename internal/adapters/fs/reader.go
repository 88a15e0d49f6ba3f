// Package fs implements the file system ports: document reading and atomic script writing.
package fs

import (
	"os"

	"go.trai.ch/requiregen/internal/core/domain"
	"go.trai.ch/zerr"
)

// Reader implements ports.DocumentReader on the local file system.
type Reader struct{}

// NewReader creates a Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read returns the contents of the file at path.
func (r *Reader) Read(path string) ([]byte, error) {
	//nolint:gosec // Paths are given by the user on the command line
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", path)
	}
	return data, nil
}
