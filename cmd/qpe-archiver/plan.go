package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jdossgollin/climate-data/internal/inventory"
)

var cmdPlan = &Command{
	UsageLine: "plan -start T -end T [-root dir]",
	Short:     "list snapshots in a range that are not stored locally",
	Long: `
Plan scans the archive tree under -root (storage.root by default) and prints,
for every valid snapshot between -start and -end that has no compressed or
raw copy there, the URL to fetch and the path to store it at, separated by a
tab.
	`,
}

var (
	planRange rangeFlags
	planRoot  string
)

func init() {
	cmdPlan.Run = runPlan
	planRange.register(&cmdPlan.Flag)
	cmdPlan.Flag.StringVar(&planRoot, "root", "", "archive root `directory`")
}

func runPlan(ctx context.Context, cmd *Command, args []string) {
	cfg := loadConfig()
	logger := newLogger(cfg)
	codec := mustCodec(cfg)
	tr := mustRange(cfg, &planRange)

	root := planRoot
	if root == "" {
		root = cfg.Storage.Root
	}

	inv, err := inventory.Scan(ctx, root)
	if err != nil {
		log.Fatal(err)
	}
	for _, path := range inv.Skipped {
		logger.Warn("ignoring file with unrecognised name", "path", path)
	}

	entries, err := inv.Plan(codec, tr)
	if err != nil {
		log.Fatal(err)
	}
	for _, e := range entries {
		fmt.Printf("%s\t%s\n", e.URL, e.Path)
	}
	logger.Info("plan complete", "range", tr.Describe(), "hours", tr.Len(), "stored", inv.Len(), "missing", len(entries))
}
