package watcher

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jdossgollin/climate-data/internal/naming"
)

// StartFsNotify runs detect once the incoming directory has been quiet for
// the debounce window after a snapshot file was created or written.
func (w *Watcher) StartFsNotify(ctx context.Context) error {
	nw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer nw.Close()

	w.mu.RLock()
	dir, debounce := w.dir, w.debounce
	w.mu.RUnlock()

	if err := nw.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	w.log.Info("watching incoming directory", "dir", dir, "mode", "fsnotify")

	quiet := time.NewTimer(debounce)
	quiet.Stop()
	defer quiet.Stop()
	var settled <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-nw.Events:
			if !ok {
				return errors.New("fsnotify event stream closed")
			}
			if !isSnapshotEvent(ev) {
				continue
			}
			w.log.Debug("event", "name", ev.Name, "op", ev.Op)
			quiet.Reset(debounce)
			settled = quiet.C

		case <-settled:
			settled = nil
			w.detect()

		case err, ok := <-nw.Errors:
			if !ok {
				return errors.New("fsnotify error stream closed")
			}
			w.log.Error("fsnotify error", "error", err)
		}
	}
}

// isSnapshotEvent reports whether ev creates or writes a visible file with an
// archive extension. Partial downloads and dot files are ignored.
func isSnapshotEvent(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
		return false
	}
	base := filepath.Base(ev.Name)
	if strings.HasPrefix(base, ".") {
		return false
	}
	_, ok := naming.KindOf(base)
	return ok
}
