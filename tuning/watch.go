package tuning

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher re-loads a tuning file whenever it changes on disk, for live feel
// iteration. Valid reloads arrive on Updates; files that fail to parse or
// validate report on Errors and keep the previous tuning in effect.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	Updates chan Tuning
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher watches the given tuning file. The file's directory is watched
// rather than the file itself, so editors that replace the file on save keep
// triggering reloads.
func NewWatcher(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher: fw,
		path:    filepath.Clean(path),
		Updates: make(chan Tuning, 4),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher. The Updates and Errors channels are closed by the
// watch goroutine once it has stopped sending, so a reader draining them sees
// a clean close instead of racing one.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Errors)
	defer close(w.Updates)

	var lastReload time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			now := time.Now()
			if now.Sub(lastReload) < 100*time.Millisecond {
				continue
			}
			lastReload = now

			t, err := Load(w.path)
			if err != nil {
				select {
				case w.Errors <- err:
				default:
				}
				continue
			}
			select {
			case w.Updates <- t:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}
