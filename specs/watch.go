package specs

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher signals when any on-disk spec or map override changes. The
// game reloads its whole configuration on any change, so individual
// events are coalesced into one pending Reload signal instead of being
// reported per file.
type Watcher struct {
	watcher *fsnotify.Watcher

	// Reload holds at most one pending signal; receive from it each
	// tick to learn whether anything changed since the last reload.
	Reload chan struct{}
	// Errors holds the most recent watch error.
	Errors chan error

	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher watches the given directories for spec file changes.
// Directories that do not exist are skipped; at least one must be
// watchable.
func NewWatcher(dirs ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	watched := 0
	for _, dir := range dirs {
		if err := fsw.Add(dir); err == nil {
			watched++
		}
	}
	if watched == 0 {
		fsw.Close()
		return nil, fmt.Errorf("specs: no watchable directories in %v", dirs)
	}

	w := &Watcher{
		watcher: fsw,
		Reload:  make(chan struct{}, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops watching. The Reload and Errors channels stay open; they
// simply go quiet.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !isSpecFile(event.Name) {
				continue
			}
			// Coalesce: a signal already pending covers this change too.
			select {
			case w.Reload <- struct{}{}:
			default:
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

func isSpecFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".tengo", ".txt":
		return true
	}
	return false
}
