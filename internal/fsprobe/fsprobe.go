// Package fsprobe checks whether fsnotify works reliably for a directory.
// Network and container-mounted filesystems often accept a watch but never
// deliver events, so the probe performs a real create+rename and waits.
package fsprobe

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultTimeout is how long Probe waits for the first event.
const DefaultTimeout = 200 * time.Millisecond

// Result reports whether fsnotify is usable and why.
type Result struct {
	FsnotifySupported bool   // true if events are delivered
	Reason            string // explanation when unsupported
}

func unsupported(format string, args ...any) Result {
	return Result{FsnotifySupported: false, Reason: fmt.Sprintf(format, args...)}
}

// Probe tests whether fsnotify reports events in dir within timeout.
func Probe(dir string, timeout time.Duration) Result {
	st, err := os.Stat(dir)
	if err != nil {
		return unsupported("stat failed: %v", err)
	}
	if !st.IsDir() {
		return unsupported("%s is not a directory", dir)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return unsupported("fsnotify unavailable: %v", err)
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return unsupported("cannot watch directory: %v", err)
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".qpe-probe-%d.tmp", os.Getpid()))
	final := filepath.Join(dir, fmt.Sprintf(".qpe-probe-%d", os.Getpid()))

	f, err := os.Create(tmp)
	if err != nil {
		return unsupported("cannot create probe file: %v", err)
	}
	f.Close()

	// Rename mirrors how downloaders publish finished files.
	if err := os.Rename(tmp, final); err != nil {
		os.Remove(tmp)
		return unsupported("rename failed: %v", err)
	}
	defer os.Remove(final)

	deadline := time.After(timeout)
	for {
		select {
		case ev := <-w.Events:
			if ev.Has(fsnotify.Rename) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write) {
				return Result{FsnotifySupported: true}
			}
		case err := <-w.Errors:
			return unsupported("fsnotify error: %v", err)
		case <-deadline:
			return unsupported("no events received within %v", timeout)
		}
	}
}
