package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/requiregen/internal/core/ports"
)

const (
	// ReaderNodeID is the unique identifier for the document reader Graft node.
	ReaderNodeID graft.ID = "adapter.fs.reader"

	// WriterNodeID is the unique identifier for the script writer Graft node.
	WriterNodeID graft.ID = "adapter.fs.writer"
)

func init() {
	graft.Register(graft.Node[ports.DocumentReader]{
		ID:        ReaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DocumentReader, error) {
			return NewReader(), nil
		},
	})

	graft.Register(graft.Node[ports.ScriptWriter]{
		ID:        WriterNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ScriptWriter, error) {
			return NewAtomicWriter(), nil
		},
	})
}
