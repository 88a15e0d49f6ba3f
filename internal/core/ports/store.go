package ports

import "go.trai.ch/requiregen/internal/core/domain"

// SnapshotStore keeps raw snapshot documents captured by the pre-update hook.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type SnapshotStore interface {
	// Get retrieves the document captured under label in the project at root.
	// Returns nil, nil if not found.
	Get(root string, label domain.Label) ([]byte, error)

	// Put stores the document under label in the project at root.
	Put(root string, label domain.Label, data []byte) error

	// Clear removes every captured document in the project at root.
	Clear(root string) error
}
