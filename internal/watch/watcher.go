// Package watch rebuilds a quiz on content changes. It watches the corpus
// directory tree recursively and invokes a rebuild callback, debounced so a
// burst of editor writes triggers a single rebuild.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/quizbuilder/internal/logfields"
	"github.com/fsnotify/fsnotify"
)

// Watcher monitors a quiz corpus directory and triggers debounced rebuilds.
type Watcher struct {
	root         string
	rebuild      func(ctx context.Context)
	watcher      *fsnotify.Watcher
	rebuildChan  chan struct{}
	debounceTime time.Duration
}

// New creates a watcher over root. The rebuild callback runs on the
// watcher's debounce goroutine; it must not block indefinitely.
func New(root string, rebuild func(ctx context.Context)) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to resolve watch root: %w", err)
	}

	return &Watcher{
		root:         absRoot,
		rebuild:      rebuild,
		watcher:      watcher,
		rebuildChan:  make(chan struct{}, 1),
		debounceTime: 500 * time.Millisecond, // Debounce rapid editor writes
	}, nil
}

// Run watches until ctx is cancelled. fsnotify watches are not recursive,
// so every directory under the root is registered, and directories created
// while running are added as they appear.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() { _ = w.watcher.Close() }()

	if err := w.addRecursive(w.root); err != nil {
		return err
	}

	slog.Info("Watching quiz directory for changes", logfields.Path(w.root))

	go w.rebuildLoop(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("Watcher error", logfields.Error(err))
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	// New directories need their own watch before their contents show up.
	if event.Op&fsnotify.Create == fsnotify.Create {
		if err := w.addRecursive(event.Name); err == nil {
			slog.Debug("Watching new path", logfields.Path(event.Name))
		}
	}

	// Rebuild on yaml changes; removes and renames also matter when the
	// vanished path was a directory, which can no longer be stat'ed.
	if filepath.Ext(event.Name) != ".yaml" && event.Op&(fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}

	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
		slog.Debug("Content change detected", logfields.Path(event.Name), slog.String("op", event.Op.String()))
		w.trigger()
	}
}

// trigger requests a debounced rebuild; a pending request is not duplicated.
func (w *Watcher) trigger() {
	select {
	case w.rebuildChan <- struct{}{}:
	default:
		// Rebuild already pending
	}
}

// rebuildLoop debounces rebuild requests.
func (w *Watcher) rebuildLoop(ctx context.Context) {
	var timer *time.Timer

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return
		case <-w.rebuildChan:
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounceTime, func() {
				w.rebuild(ctx)
			})
		}
	}
}

// addRecursive registers path and all directories below it. Non-directory
// paths are ignored.
func (w *Watcher) addRecursive(path string) error {
	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Path may have vanished between event and walk
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.watcher.Add(p); err != nil {
			return fmt.Errorf("failed to watch %s: %w", p, err)
		}
		return nil
	})
}
