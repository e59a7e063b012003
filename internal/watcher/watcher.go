// Package watcher monitors the incoming directory and requests scans when
// new downloads land in it.
package watcher

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jdossgollin/climate-data/internal/config"
	"github.com/jdossgollin/climate-data/internal/fsprobe"
	"github.com/jdossgollin/climate-data/internal/logging"
	"github.com/jdossgollin/climate-data/internal/mailbox"
	"github.com/jdossgollin/climate-data/internal/metrics"
	"github.com/jdossgollin/climate-data/internal/worker"
)

// Watcher observes the incoming directory and enqueues a scan job whenever
// its newest file changes.
type Watcher struct {
	mu sync.RWMutex

	dir          string
	interval     time.Duration
	pollSchedule string
	mode         string
	debounce     time.Duration
	stability    time.Duration

	log     logging.Logger
	metrics *metrics.FilerMetrics

	seen dirState // incoming files as of the last trigger

	mb *mailbox.Mailbox[worker.Job]
}

// New creates a watcher from the incoming configuration.
func New(cfg config.IncomingConfig, log logging.Logger, m *metrics.FilerMetrics, mb *mailbox.Mailbox[worker.Job]) *Watcher {
	return &Watcher{
		dir:          cfg.Path,
		interval:     cfg.Watch.PollInterval,
		pollSchedule: cfg.Watch.PollSchedule,
		mode:         cfg.Watch.Mode,
		debounce:     cfg.Watch.DebounceWindow,
		stability:    cfg.Watch.StabilityWindow,
		log:          log,
		metrics:      m,
		mb:           mb,
	}
}

// Start chooses the watching strategy based on config and blocks until ctx
// is done.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.RLock()
	mode, dir := w.mode, w.dir
	w.mu.RUnlock()

	if dir == "" {
		return fmt.Errorf("no incoming directory configured")
	}

	// Pick up anything that arrived while we were not running.
	w.trigger("startup")

	switch mode {
	case "fsnotify":
		return w.StartFsNotify(ctx)

	case "poll":
		return w.StartPolling(ctx)

	case "auto":
		res := fsprobe.Probe(dir, fsprobe.DefaultTimeout)
		if res.FsnotifySupported {
			return w.StartFsNotify(ctx)
		}
		w.log.Warn("fsnotify disabled, polling instead", "reason", res.Reason)
		return w.StartPolling(ctx)

	default:
		return fmt.Errorf("unknown mode %q", mode)
	}
}

// trigger puts a scan job into the mailbox.
func (w *Watcher) trigger(reason string) {
	w.metrics.WatcherTriggers.Inc()
	w.mb.Put(worker.Job{Reason: reason, Requested: time.Now()})
	w.log.Debug("scan triggered", "reason", reason)
}
