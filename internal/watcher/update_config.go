package watcher

import "github.com/jdossgollin/climate-data/internal/config"

// UpdateConfig updates watcher fields atomically for hot-reload. Mode and
// directory changes take effect on the next Start.
func (w *Watcher) UpdateConfig(cfg config.IncomingConfig) {
	w.mu.Lock()
	defer w.mu.Unlock()

	dirChanged := cfg.Path != w.dir

	w.dir = cfg.Path
	w.interval = cfg.Watch.PollInterval
	w.pollSchedule = cfg.Watch.PollSchedule
	w.mode = cfg.Watch.Mode
	w.debounce = cfg.Watch.DebounceWindow
	w.stability = cfg.Watch.StabilityWindow

	if dirChanged {
		w.seen = nil
	}
}
