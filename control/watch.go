// File: control/watch.go
// Package control
// Author: momentics <momentics@gmail.com>
//
// fsnotify-driven hot reload: edits to a watched YAML file flow into a
// ConfigStore, which in turn fires its reload listeners.

package control

import (
	"log"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher propagates config file edits into a ConfigStore.
type Watcher struct {
	fw    *fsnotify.Watcher
	path  string
	store *ConfigStore

	done chan struct{}
	once sync.Once
}

// WatchFile starts watching path and merging it into store on every write.
// The parent directory is watched rather than the file itself, so editors
// that replace the file keep triggering reloads.
func WatchFile(path string, store *ConfigStore) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}
	w := &Watcher{
		fw:    fw,
		path:  abs,
		store: store,
		done:  make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) {
				if err := LoadInto(w.path, w.store); err != nil {
					log.Printf("[control] config reload failed: %v", err)
				}
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			log.Printf("[control] watch error: %v", err)
		case <-w.done:
			return
		}
	}
}

// Close stops the watcher. Safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fw.Close()
	})
	return err
}
