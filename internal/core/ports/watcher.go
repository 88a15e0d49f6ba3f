package ports

import "context"

// Watcher reports changes to a fixed set of files.
//
//go:generate go run go.uber.org/mock/mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Watch calls onChange with the changed files, coalesced over a short window,
	// until ctx is done. onChange runs on the calling goroutine.
	Watch(ctx context.Context, files []string, onChange func(changed []string)) error
}
