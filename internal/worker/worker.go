// Package worker files snapshots from the incoming directory into the
// nested archive tree.
package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jdossgollin/climate-data/internal/config"
	"github.com/jdossgollin/climate-data/internal/fs"
	"github.com/jdossgollin/climate-data/internal/logging"
	"github.com/jdossgollin/climate-data/internal/mailbox"
	"github.com/jdossgollin/climate-data/internal/metrics"
	"github.com/jdossgollin/climate-data/internal/naming"
	"github.com/jdossgollin/climate-data/internal/snapshot"
)

// settings is the reloadable part of the worker.
type settings struct {
	incoming  config.IncomingConfig
	storage   config.StorageConfig
	codec     naming.Codec
	validator snapshot.Validator
}

// Worker moves incoming snapshots to their archive paths.
type Worker struct {
	mu      sync.RWMutex
	set     settings
	fs      fs.FS
	log     logging.Logger
	metrics *metrics.FilerMetrics
	mb      *mailbox.Mailbox[Job]
}

// New creates a worker from cfg. A nil filesystem means the OS filesystem.
func New(cfg *config.Config, log logging.Logger, m *metrics.FilerMetrics, mb *mailbox.Mailbox[Job], filesystem fs.FS) (*Worker, error) {
	log.Debug("creating worker")
	set, err := newSettings(cfg)
	if err != nil {
		return nil, err
	}
	if filesystem == nil {
		filesystem = fs.New()
	}
	return &Worker{
		set:     set,
		fs:      filesystem,
		log:     log,
		metrics: m,
		mb:      mb,
	}, nil
}

func newSettings(cfg *config.Config) (settings, error) {
	codec, err := cfg.Codec()
	if err != nil {
		return settings{}, err
	}
	validator, err := cfg.Validator()
	if err != nil {
		return settings{}, err
	}
	return settings{
		incoming:  cfg.Incoming,
		storage:   cfg.Storage,
		codec:     codec,
		validator: validator,
	}, nil
}

// UpdateConfig hot-reloads archive and directory settings.
func (w *Worker) UpdateConfig(cfg *config.Config) error {
	set, err := newSettings(cfg)
	if err != nil {
		return err
	}
	w.mu.Lock()
	w.set = set
	w.mu.Unlock()
	w.log.Info("worker config updated", "incoming", set.incoming.Path, "root", set.storage.Root)
	return nil
}

// Start runs the worker loop until ctx is done, scanning once per job.
func (w *Worker) Start(ctx context.Context) {
	w.log.Info("starting worker")
	for {
		job, ok := w.mb.Take(ctx)
		if !ok {
			w.log.Info("worker stopped")
			return
		}
		w.log.Debug("scan requested", "reason", job.Reason, "age", time.Since(job.Requested))
		if _, err := w.FileAll(ctx); err != nil {
			w.log.Error("worker: scan failed", "error", err)
		}
	}
}

// FileAll makes one pass over the incoming directory.
func (w *Worker) FileAll(ctx context.Context) (Result, error) {
	w.mu.RLock()
	set := w.set
	w.mu.RUnlock()

	var res Result
	if set.incoming.Path == "" {
		return res, fmt.Errorf("no incoming directory configured")
	}

	w.metrics.Scans.Inc()
	entries, err := w.fs.ReadDir(set.incoming.Path)
	if err != nil {
		return res, fmt.Errorf("reading incoming directory: %w", err)
	}

	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if e.IsDir || isHidden(e.Name) {
			continue
		}
		outcome := w.fileOne(ctx, set, e)
		w.metrics.Files.WithLabelValues(outcome).Inc()
		res.add(outcome)
	}

	w.log.Info("scan complete",
		"filed", res.Filed, "duplicate", res.Duplicate,
		"rejected", res.Rejected, "skipped", res.Skipped, "failed", res.Failed)
	return res, nil
}

func isHidden(name string) bool {
	return len(name) > 0 && name[0] == '.'
}
