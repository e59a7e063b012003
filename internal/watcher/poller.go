package watcher

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// StartPolling triggers detect() on the configured cron schedule, or on a
// fixed interval when no schedule is set.
func (w *Watcher) StartPolling(ctx context.Context) error {
	w.mu.RLock()
	interval := w.interval
	spec := w.pollSchedule
	dir := w.dir
	w.mu.RUnlock()

	sched, err := pollSchedule(spec, interval)
	if err != nil {
		return err
	}
	w.log.Info("watching incoming directory", "dir", dir, "mode", "poll")

	for {
		timer := time.NewTimer(time.Until(sched.Next(time.Now())))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
			w.detect()
		}
	}
}

func pollSchedule(spec string, interval time.Duration) (cron.Schedule, error) {
	if spec != "" {
		s, err := cron.ParseStandard(spec)
		if err != nil {
			return nil, fmt.Errorf("parsing poll schedule %q: %w", spec, err)
		}
		return s, nil
	}
	if interval <= 0 {
		return nil, fmt.Errorf("poll interval must be positive, got %v", interval)
	}
	return cron.Every(interval), nil
}
