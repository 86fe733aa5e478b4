package theme

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a theme file whenever it changes on disk and hands the
// parsed result to a callback. Reloads are debounced; a file that fails
// to parse is skipped and the previously delivered theme stays active.
type Watcher struct {
	path     string
	fsw      *fsnotify.Watcher
	debounce *debouncer
	done     chan struct{}
}

// Watch starts watching path and invokes onChange with each successfully
// parsed theme. The initial load is delivered synchronously before Watch
// returns. Call Stop to release the watcher.
func Watch(path string, onChange func(Theme)) (*Watcher, error) {
	th, err := Load(path)
	if err != nil {
		return nil, err
	}
	onChange(th)

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	// Watch the directory, not the file: editors that replace-on-save
	// (rename + create) would otherwise drop the watch.
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	w := &Watcher{
		path:     path,
		fsw:      fsw,
		debounce: newDebouncer(0),
		done:     make(chan struct{}),
	}
	go w.loop(onChange)
	return w, nil
}

func (w *Watcher) loop(onChange func(Theme)) {
	base := filepath.Base(w.path)
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != base {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			w.debounce.trigger(func() {
				if th, err := Load(w.path); err == nil {
					onChange(th)
				}
			})
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			// Watch errors degrade to the static theme.
		}
	}
}

// Stop releases the underlying filesystem watcher.
func (w *Watcher) Stop() {
	close(w.done)
	w.debounce.cancel()
	w.fsw.Close()
}
