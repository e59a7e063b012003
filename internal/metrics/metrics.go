package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcomes recorded by FilerMetrics.Files.
const (
	OutcomeFiled     = "filed"
	OutcomeDuplicate = "duplicate"
	OutcomeRejected  = "rejected"
	OutcomeSkipped   = "skipped"
	OutcomeError     = "error"
)

// FilerMetrics holds the Prometheus metrics for filing incoming snapshots.
type FilerMetrics struct {
	Files           *prometheus.CounterVec
	Scans           prometheus.Counter
	WatcherTriggers prometheus.Counter
	LastFiled       prometheus.Gauge
}

// NewFilerMetrics creates the metrics and registers them with reg.
func NewFilerMetrics(reg prometheus.Registerer) *FilerMetrics {
	factory := promauto.With(reg)
	return &FilerMetrics{
		Files: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "qpe_archiver",
			Subsystem: "filer",
			Name:      "files_total",
			Help:      "Total number of incoming files processed, by outcome.",
		}, []string{"outcome"}), // outcome: filed, duplicate, rejected, skipped, error
		Scans: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "qpe_archiver",
			Subsystem: "filer",
			Name:      "scans_total",
			Help:      "Total number of passes over the incoming directory.",
		}),
		WatcherTriggers: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "qpe_archiver",
			Subsystem: "watcher",
			Name:      "triggers_total",
			Help:      "Total number of scan triggers emitted by the watcher.",
		}),
		LastFiled: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "qpe_archiver",
			Subsystem: "filer",
			Name:      "last_filed_snapshot_timestamp_seconds",
			Help:      "Snapshot time of the most recently filed file, as a Unix timestamp.",
		}),
	}
}
