package prefs

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/zenmachine/zentop/internal/util"
)

// Watcher reloads preferences when the file changes on disk.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	events  chan Preferences
	done    chan struct{}
}

// NewWatcher watches the directory containing path. Watching the directory
// rather than the file survives editors that replace the file on save.
func NewWatcher(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher: fw,
		path:    path,
		events:  make(chan Preferences, 4),
		done:    make(chan struct{}),
	}
	go w.processEvents()
	return w, nil
}

// Events delivers reloaded preferences after each change to the file.
func (w *Watcher) Events() <-chan Preferences {
	return w.events
}

// Close stops watching.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}

func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			util.LogDebugf("Preferences file changed (%s), reloading", event.Op)
			select {
			case w.events <- Load(w.path):
			case <-w.done:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			util.LogWarnf("Preferences watcher error: %v", err)
		}
	}
}
