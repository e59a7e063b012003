package watcher

import (
	"maps"
	"time"
)

// settle waits for the stability window and reports whether dir still
// matches before, so downloads in progress are not filed half-written.
// It returns the state read after the wait.
func (w *Watcher) settle(dir string, before dirState) (dirState, bool) {
	w.mu.RLock()
	stability := w.stability
	w.mu.RUnlock()

	time.Sleep(stability)

	after, err := readDirState(dir)
	if err != nil {
		return nil, false
	}
	return after, maps.EqualFunc(before, after, fileState.equal)
}
