// Package watcher re-runs a parse when Delphi sources change on disk.
package watcher

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"dgrok/internal/loader"
	"dgrok/internal/observ"
)

// DefaultDebounce is the quiet period after the last event before a
// change set is delivered.
const DefaultDebounce = 300 * time.Millisecond

// Watcher collects file events below a set of search paths and delivers
// them in debounced batches. Only files whose names match the masks are
// reported.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	masks     *loader.Masks
	debounce  time.Duration
	onChange  func([]string)
	log       *slog.Logger
	metrics   *observ.Metrics

	callbackMu sync.Mutex
	pendingMu  sync.Mutex
	pending    map[string]struct{}
	timer      *time.Timer
}

// New creates a watcher; onChange receives the sorted set of changed paths.
// log and metrics may be nil.
func New(masks *loader.Masks, debounce time.Duration, onChange func([]string), log *slog.Logger, metrics *observ.Metrics) (*Watcher, error) {
	if onChange == nil || masks == nil {
		return nil, os.ErrInvalid
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if log == nil {
		log = slog.Default()
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fsWatcher: fsw,
		masks:     masks,
		debounce:  debounce,
		onChange:  onChange,
		log:       log,
		metrics:   metrics,
		pending:   make(map[string]struct{}),
	}, nil
}

// Add starts watching the search paths. A path ending in "**" is watched
// recursively, including directories created later.
func (w *Watcher) Add(searchPaths []string) error {
	for _, sp := range searchPaths {
		dir, recursive := loader.SplitSearchPath(sp)
		if !recursive {
			if err := w.fsWatcher.Add(dir); err != nil {
				return err
			}
			continue
		}
		if err := w.watchRecursive(dir); err != nil {
			return err
		}
	}
	return nil
}

func (w *Watcher) watchRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.fsWatcher.Add(path)
		}
		return nil
	})
}

// Run processes events until ctx is done. Pending changes are dropped on
// exit.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return nil
			}
			w.handle(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return nil
			}
			w.log.Error("watcher error", "error", err)
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if event.Op&fsnotify.Create == fsnotify.Create {
		info, err := os.Stat(event.Name)
		if err == nil && info.IsDir() {
			if err := w.watchRecursive(event.Name); err != nil && !errors.Is(err, os.ErrNotExist) {
				w.log.Warn("failed to watch new directory", "path", event.Name, "error", err)
			}
			return
		}
	}
	if !w.masks.Match(event.Name) {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
		w.metrics.WatcherEvent()
		w.scheduleChange(event.Name)
	}
}

func (w *Watcher) scheduleChange(path string) {
	w.pendingMu.Lock()
	defer w.pendingMu.Unlock()

	w.pending[path] = struct{}{}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.flushChanges)
}

func (w *Watcher) flushChanges() {
	w.pendingMu.Lock()
	paths := make([]string, 0, len(w.pending))
	for path := range w.pending {
		paths = append(paths, path)
	}
	w.pending = make(map[string]struct{})
	w.pendingMu.Unlock()

	if len(paths) == 0 {
		return
	}
	slices.Sort(paths)
	w.callbackMu.Lock()
	defer w.callbackMu.Unlock()
	w.onChange(paths)
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.pendingMu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.pendingMu.Unlock()
	return w.fsWatcher.Close()
}
