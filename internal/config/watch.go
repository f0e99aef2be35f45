package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce is how long the file must stay quiet before it is re-read.
const debounce = 100 * time.Millisecond

// Reload carries the outcome of re-reading a watched config file.
type Reload struct {
	Path   string
	Config RunnerConfig
	Err    error
}

// Watcher re-reads a config file whenever it changes on disk.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	Reloads chan Reload
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher watches path for writes. The parent directory is watched so
// that editors replacing the file (create + rename) are picked up too.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: cannot resolve %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: cannot create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("config: cannot watch %s: %w", filepath.Dir(abs), err)
	}

	watcher := &Watcher{
		watcher: w,
		path:    abs,
		Reloads: make(chan Reload, 4),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher and closes the Reloads channel.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Reloads)

	// Reload once the file has been quiet for the debounce period, so a
	// truncate followed by a write is read as one change.
	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			timer.Reset(debounce)
		case <-timer.C:
			cfg, err := LoadFile(w.path)
			w.send(Reload{Path: w.path, Config: cfg, Err: err})
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.send(Reload{Path: w.path, Err: fmt.Errorf("config: watch: %w", err)})
		case <-w.closeCh:
			return
		}
	}
}

// send delivers r unless the watcher is closing.
func (w *Watcher) send(r Reload) {
	select {
	case w.Reloads <- r:
	case <-w.closeCh:
	}
}
