package watcher

import (
	"os"
	"strings"
	"time"
)

// fileState is what detect remembers about one incoming file.
type fileState struct {
	size  int64
	mtime time.Time
}

// dirState maps the visible regular files of a directory to their state.
type dirState map[string]fileState

// detect triggers a scan when a file appeared or changed since the last
// trigger and the directory has stopped growing. Files that disappeared, for
// instance because the worker filed them, do not trigger.
func (w *Watcher) detect() {
	w.mu.RLock()
	dir := w.dir
	seen := w.seen
	w.mu.RUnlock()

	cur, err := readDirState(dir)
	if err != nil {
		w.log.Error("reading incoming directory", "dir", dir, "error", err)
		return
	}
	if !cur.hasNewSince(seen) {
		w.remember(dir, cur)
		return
	}

	settled, ok := w.settle(dir, cur)
	if !ok {
		w.log.Debug("incoming directory still changing", "dir", dir)
		return
	}

	w.remember(dir, settled)
	w.trigger("change")
}

// remember records state as seen, unless the directory was reconfigured
// while it was being read.
func (w *Watcher) remember(dir string, state dirState) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.dir == dir {
		w.seen = state
	}
}

// hasNewSince reports whether s holds a file that is absent from prev or
// differs from it in size or modification time.
func (s dirState) hasNewSince(prev dirState) bool {
	for name, st := range s {
		old, ok := prev[name]
		if !ok || !old.equal(st) {
			return true
		}
	}
	return false
}

func (f fileState) equal(o fileState) bool {
	return f.size == o.size && f.mtime.Equal(o.mtime)
}

// readDirState lists the visible regular files of dir.
func readDirState(dir string) (dirState, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	state := make(dirState, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			// removed between listing and stat
			continue
		}
		state[e.Name()] = fileState{size: info.Size(), mtime: info.ModTime()}
	}
	return state, nil
}
