// Package cas stores captured snapshot documents on disk.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/requiregen/internal/core/domain"
	"go.trai.ch/zerr"
)

// record is the on-disk envelope of a captured document.
type record struct {
	Label    domain.Label `json:"label"`
	Digest   string       `json:"digest"`
	Document []byte       `json:"document"`
}

// Store implements ports.SnapshotStore using one file per label.
type Store struct{}

// NewStore creates a Store.
func NewStore() *Store {
	return &Store{}
}

// Get returns the document captured under label, or nil, nil if none was captured.
func (s *Store) Get(root string, label domain.Label) ([]byte, error) {
	filename := s.filename(root, label)
	//nolint:gosec // Path is built from the project root and a hashed label
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", filename)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", filename)
	}
	if rec.Label != label || rec.Digest != digest(rec.Document) {
		err := zerr.With(domain.ErrStoreReadFailed, "path", filename)
		return nil, zerr.With(err, "reason", "digest mismatch")
	}

	return rec.Document, nil
}

// Put captures data under label. The bytes are kept verbatim.
func (s *Store) Put(root string, label domain.Label, data []byte) error {
	filename := s.filename(root, label)

	encoded, err := json.MarshalIndent(record{
		Label:    label,
		Digest:   digest(data),
		Document: data,
	}, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", filename)
	}

	//nolint:gosec // Path is built from the project root and a hashed label
	if err := os.WriteFile(filename, encoded, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", filename)
	}

	return nil
}

// Clear removes the snapshot directory. A missing directory is not an error.
func (s *Store) Clear(root string) error {
	dir := filepath.Join(root, domain.DefaultSnapshotsPath())
	if err := os.RemoveAll(dir); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", dir)
	}
	return nil
}

func (s *Store) filename(root string, label domain.Label) string {
	name := strconv.FormatUint(xxhash.Sum64String(string(label)), 16)
	return filepath.Join(root, domain.DefaultSnapshotsPath(), name+".json")
}

func digest(data []byte) string {
	return strconv.FormatUint(xxhash.Sum64(data), 16)
}
