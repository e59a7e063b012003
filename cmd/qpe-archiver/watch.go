package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jdossgollin/climate-data/internal/config"
	"github.com/jdossgollin/climate-data/internal/logging"
	"github.com/jdossgollin/climate-data/internal/mailbox"
	"github.com/jdossgollin/climate-data/internal/metrics"
	"github.com/jdossgollin/climate-data/internal/watcher"
	"github.com/jdossgollin/climate-data/internal/worker"
)

var cmdWatch = &Command{
	UsageLine: "watch",
	Short:     "keep filing downloads as they arrive",
	Long: `
Watch files everything already in incoming.path and then keeps watching the
directory, filing new snapshots once their writes have settled. Changes are
detected with filesystem notifications where the filesystem supports them and
by polling otherwise (incoming.watch.mode).

SIGHUP reloads the configuration when configReload.enabled is set. SIGINT and
SIGTERM stop the daemon. Prometheus metrics are served at /metrics on
metrics.addr when it is set.
	`,
}

func init() {
	cmdWatch.Run = runWatch
}

func runWatch(ctx context.Context, cmd *Command, args []string) {
	cfg := loadConfig()
	logger := newLogger(cfg)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.NewFilerMetrics(reg)

	// Mailbox for scan jobs
	mb := mailbox.New[worker.Job]()

	w, err := worker.New(cfg, logger, m, mb, nil)
	if err != nil {
		log.Fatalf("failed to create worker: %v", err)
	}
	watch := watcher.New(cfg.Incoming, logger, m, mb)

	ctx, stop := context.WithCancel(ctx)
	defer stop()

	var srv *http.Server
	if cfg.Metrics.Addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
		srv = &http.Server{
			Addr:              cfg.Metrics.Addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.Info("starting metrics server", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server failed", "error", err)
				stop()
			}
		}()
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Start(ctx)
	}()

	go func() {
		if err := watch.Start(ctx); err != nil {
			logger.Error("watcher failed", "error", err)
			setExitStatus(1)
			stop()
		}
	}()

	if cfg.ConfigReload.Enabled {
		go reloadOnHangup(ctx, logger, w, watch)
	}

	<-ctx.Done()
	logger.Info("shutting down")

	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics server shutdown failed", "error", err)
		}
	}
	<-done
	logger.Info("exit complete")
}

// reloadOnHangup re-reads the configuration on every SIGHUP and applies it
// to the worker and watcher. A configuration that fails to load or validate
// is ignored and the previous one stays in effect.
func reloadOnHangup(ctx context.Context, logger logging.Logger, w *worker.Worker, watch *watcher.Watcher) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGHUP)
	defer signal.Stop(sigCh)

	for {
		select {
		case <-ctx.Done():
			return
		case <-sigCh:
		}

		newCfg, err := config.Load(configFile())
		if err != nil {
			logger.Error("config reload failed", "error", err)
			continue
		}
		if err := w.UpdateConfig(newCfg); err != nil {
			logger.Error("config reload failed", "error", err)
			continue
		}
		watch.UpdateConfig(newCfg.Incoming)

		logger.Info("config reloaded")
	}
}
