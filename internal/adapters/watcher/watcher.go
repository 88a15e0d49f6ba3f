package watcher

import (
	"context"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/requiregen/internal/core/domain"
	"go.trai.ch/requiregen/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

// Watcher implements ports.Watcher using fsnotify.
//
// The parent directory of every file is watched, so a file replaced by rename
// (as the dependency manager and most editors do) is still reported.
type Watcher struct {
	logger ports.Logger
	window time.Duration
}

// New creates a Watcher coalescing events over window.
func New(logger ports.Logger, window time.Duration) *Watcher {
	return &Watcher{logger: logger, window: window}
}

// Watch implements ports.Watcher.
func (w *Watcher) Watch(ctx context.Context, files []string, onChange func(changed []string)) error {
	targets, dirs, err := resolveTargets(files)
	if err != nil {
		return err
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}
	defer func() { _ = fsWatcher.Close() }()

	for _, dir := range dirs {
		if err := fsWatcher.Add(dir); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "path", dir)
		}
	}

	batches := make(chan []string)
	done := make(chan struct{})
	defer close(done)

	debouncer := NewDebouncer(w.window, func(paths []string) {
		select {
		case batches <- paths:
		case <-done:
		}
	})
	defer debouncer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsWatcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			name := filepath.Clean(event.Name)
			if _, watched := targets[name]; watched {
				debouncer.Add(name)
			}
		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch: " + err.Error())
		case paths := <-batches:
			onChange(paths)
		}
	}
}

// resolveTargets returns the absolute file set and the sorted, distinct parent directories.
func resolveTargets(files []string) (map[string]struct{}, []string, error) {
	targets := make(map[string]struct{}, len(files))
	seen := make(map[string]struct{}, len(files))
	dirs := make([]string, 0, len(files))

	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return nil, nil, zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "path", f)
		}
		targets[abs] = struct{}{}

		dir := filepath.Dir(abs)
		if _, ok := seen[dir]; !ok {
			seen[dir] = struct{}{}
			dirs = append(dirs, dir)
		}
	}
	slices.Sort(dirs)
	return targets, dirs, nil
}
