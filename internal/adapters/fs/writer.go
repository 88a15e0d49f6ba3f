package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/requiregen/internal/core/domain"
	"go.trai.ch/zerr"
)

// AtomicWriter implements ports.ScriptWriter. The file is written to a
// temporary sibling and renamed into place, so a failed write never leaves
// a partial file at path.
type AtomicWriter struct{}

// NewAtomicWriter creates an AtomicWriter.
func NewAtomicWriter() *AtomicWriter {
	return &AtomicWriter{}
}

// WriteExecutable writes data to path with domain.ScriptPerm.
func (w *AtomicWriter) WriteExecutable(path string, data []byte) error {
	if err := atomicWriteFile(path, data, domain.ScriptPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileWriteFailed.Error()), "path", path)
	}
	return nil
}

func atomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Sync(); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, perm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
