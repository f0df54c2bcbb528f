package pipeline

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
)

// Watcher flags a pipeline as dirty when any of its shader source files is
// modified on disk. Filesystem events arrive on a background goroutine, but
// GL work must stay on the context thread, so the watcher only sets a flag;
// the render loop polls Dirty and performs the rebuild itself.
type Watcher struct {
	fsw   *fsnotify.Watcher
	dirty chan struct{}
	done  chan struct{}
}

// NewWatcher starts watching the given shader source files.
//
// Parameters:
//   - paths: the source file paths to watch (typically Pipeline.WatchPaths)
//
// Returns:
//   - *Watcher: the running watcher
//   - error: error if the filesystem watcher could not be created
func NewWatcher(paths ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create shader source watcher: %w", err)
	}
	for _, p := range paths {
		if err := fsw.Add(p); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("failed to watch shader source %q: %w", p, err)
		}
	}

	w := &Watcher{
		fsw:   fsw,
		dirty: make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// run collapses write events into the single-slot dirty channel.
// Editors replace files in different ways (in-place write, rename-over,
// create), so all mutating ops mark the pipeline dirty.
func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Rename) {
				select {
				case w.dirty <- struct{}{}:
				default:
				}
			}
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}

// Dirty reports and clears the pending-change flag. Non-blocking; intended
// to be polled once per frame from the render loop.
//
// Returns:
//   - bool: true if a watched source changed since the last call
func (w *Watcher) Dirty() bool {
	select {
	case <-w.dirty:
		return true
	default:
		return false
	}
}

// Close stops the watcher and releases the underlying filesystem watch.
//
// Returns:
//   - error: error from closing the filesystem watcher
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}
