package main

import (
	"context"
	"log"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jdossgollin/climate-data/internal/mailbox"
	"github.com/jdossgollin/climate-data/internal/metrics"
	"github.com/jdossgollin/climate-data/internal/worker"
)

var cmdFile = &Command{
	UsageLine: "file",
	Short:     "move downloads from the incoming directory into the archive",
	Long: `
File makes a single pass over incoming.path. Every snapshot with a valid name
is moved to its nested path under storage.root (NetCDF subsets go under
storage.derivedRoot). Files whose names cannot be decoded, fall outside the
archive coverage or are known to be missing are moved to incoming.rejectDir
when it is set and left in place otherwise.

The exit status is 1 if any file could not be filed.
	`,
}

func init() {
	cmdFile.Run = runFile
}

func runFile(ctx context.Context, cmd *Command, args []string) {
	cfg := loadConfig()
	logger := newLogger(cfg)

	m := metrics.NewFilerMetrics(prometheus.NewRegistry())
	w, err := worker.New(cfg, logger, m, mailbox.New[worker.Job](), nil)
	if err != nil {
		log.Fatal(err)
	}

	res, err := w.FileAll(ctx)
	if err != nil {
		log.Fatal(err)
	}
	if res.Failed > 0 || res.Rejected > 0 {
		setExitStatus(1)
	}
}
