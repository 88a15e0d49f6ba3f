// Package ports defines the core interfaces for the application.
package ports

// DocumentReader reads input manifest documents.
//
//go:generate go run go.uber.org/mock/mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type DocumentReader interface {
	// Read returns the full contents of the document at path.
	Read(path string) ([]byte, error)
}

// ScriptWriter writes generated scripts.
type ScriptWriter interface {
	// WriteExecutable replaces the file at path with data and marks it executable.
	// The previous contents are left untouched when the write fails.
	WriteExecutable(path string, data []byte) error
}
