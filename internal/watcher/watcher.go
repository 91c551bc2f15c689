// Package watcher provides file system watching with debouncing for the open
// file and the themes directory.
package watcher

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Zen-Editor/zen/internal/log"
	"github.com/Zen-Editor/zen/theme"
)

// Watcher monitors a directory for changes to matching files and sends
// debounced notifications.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	dir       string
	match     func(name string) bool
	ops       fsnotify.Op
	debounce  time.Duration
	onChange  chan struct{}
	done      chan struct{}
}

// Config holds watcher configuration options.
type Config struct {
	// Dir is the directory to watch.
	Dir string
	// Match reports whether a changed path is of interest. Nil matches all.
	Match func(name string) bool
	// Ops are the operations that count as a change.
	Ops         fsnotify.Op
	DebounceDur time.Duration
}

// ForFile watches a single file. Editors that save by renaming a temp file
// over the watched file produce a Create, so that counts too.
func ForFile(path string, debounce time.Duration) Config {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}
	return Config{
		Dir: filepath.Dir(abs),
		Match: func(name string) bool {
			return filepath.Clean(name) == abs
		},
		Ops:         fsnotify.Write | fsnotify.Create,
		DebounceDur: debounce,
	}
}

// ForThemes watches a themes directory for added, changed or removed themes.
func ForThemes(dir string, debounce time.Duration) Config {
	return Config{
		Dir: dir,
		Match: func(name string) bool {
			return theme.IsThemeFile(filepath.Base(name))
		},
		Ops:         fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename,
		DebounceDur: debounce,
	}
}

// New creates a new watcher.
func New(cfg Config) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	ops := cfg.Ops
	if ops == 0 {
		ops = fsnotify.Write | fsnotify.Create
	}

	return &Watcher{
		fsWatcher: fsw,
		dir:       cfg.Dir,
		match:     cfg.Match,
		ops:       ops,
		debounce:  cfg.DebounceDur,
		onChange:  make(chan struct{}, 1),
		done:      make(chan struct{}),
	}, nil
}

// Start begins watching the directory.
// Returns a channel that receives a signal when a matching file changes.
func (w *Watcher) Start() (<-chan struct{}, error) {
	if err := w.fsWatcher.Add(w.dir); err != nil {
		return nil, fmt.Errorf("watching directory %s: %w", w.dir, err)
	}

	log.Debug(log.CatWatcher, "watching", "dir", w.dir, "debounce", w.debounce)
	go w.loop()

	return w.onChange, nil
}

// Stop terminates the watcher and releases resources. The channel returned by
// Start is closed once the watch loop has exited.
func (w *Watcher) Stop() error {
	close(w.done)
	return w.fsWatcher.Close()
}

// loop processes file system events with debouncing.
func (w *Watcher) loop() {
	defer close(w.onChange)

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !w.isRelevantEvent(event) {
				continue
			}

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			// Non-blocking send - drop if a notification is already pending
			select {
			case w.onChange <- struct{}{}:
			default:
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.ErrorErr(log.CatWatcher, "watch error", err, "dir", w.dir)

		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// isRelevantEvent checks if the event should trigger a notification.
func (w *Watcher) isRelevantEvent(event fsnotify.Event) bool {
	if event.Op&w.ops == 0 {
		return false
	}
	return w.match == nil || w.match(event.Name)
}
