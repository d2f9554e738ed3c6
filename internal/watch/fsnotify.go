package watch

import (
	"github.com/fsnotify/fsnotify"
)

// FSNotifyWatcher implements Watcher using fsnotify for OS-native
// notifications.
type FSNotifyWatcher struct {
	w   *fsnotify.Watcher
	evC chan Event
	erC chan error
}

// NewFSWatcher creates a new FSNotifyWatcher.
func NewFSWatcher() (*FSNotifyWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	fw := &FSNotifyWatcher{w: w, evC: make(chan Event, 128), erC: make(chan error, 1)}
	go fw.loop()
	return fw, nil
}

func (fw *FSNotifyWatcher) loop() {
	for {
		select {
		case ev, ok := <-fw.w.Events:
			if !ok {
				return
			}
			fw.evC <- Event{Path: ev.Name, Op: mapOp(ev.Op)}
		case err, ok := <-fw.w.Errors:
			if !ok {
				return
			}
			fw.erC <- err
		}
	}
}

func mapOp(op fsnotify.Op) Op {
	var out Op
	if op&fsnotify.Create != 0 {
		out |= OpCreate
	}
	if op&fsnotify.Write != 0 {
		out |= OpWrite
	}
	if op&fsnotify.Remove != 0 {
		out |= OpRemove
	}
	if op&fsnotify.Rename != 0 {
		out |= OpRename
	}
	if op&fsnotify.Chmod != 0 {
		out |= OpChmod
	}
	return out
}

func (fw *FSNotifyWatcher) Events() <-chan Event     { return fw.evC }
func (fw *FSNotifyWatcher) Errors() <-chan error     { return fw.erC }
func (fw *FSNotifyWatcher) Add(name string) error    { return fw.w.Add(name) }
func (fw *FSNotifyWatcher) Remove(name string) error { return fw.w.Remove(name) }
func (fw *FSNotifyWatcher) Close() error             { return fw.w.Close() }
