package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/jdossgollin/climate-data/internal/config"
	"github.com/jdossgollin/climate-data/internal/logging"
)

const defaultConfigPath = "config.yaml"

var configPath = flag.String("config", defaultConfigPath, "configuration `file`")

// Commands lists the available commands and help topics.
// The order here is the order in which they are printed by 'qpe-archiver help'.
var commands = []*Command{
	cmdProduct,
	cmdNames,
	cmdURLs,
	cmdDecode,
	cmdPlan,
	cmdFile,
	cmdWatch,
}

var (
	exitStatus = 0
	exitMu     sync.Mutex
)

func setExitStatus(n int) {
	exitMu.Lock()
	if exitStatus < n {
		exitStatus = n
	}
	exitMu.Unlock()
}

func exit() {
	os.Exit(exitStatus)
}

func main() {
	flag.Usage = usage
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("qpe-archiver: ")

	args := flag.Args()
	if len(args) < 1 {
		usage()
	}

	if args[0] == "help" {
		help(args[1:])
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	for _, cmd := range commands {
		if cmd.Name() == args[0] && cmd.Run != nil {
			cmd.Flag.Usage = func() { cmd.Usage() }
			cmd.Flag.Parse(args[1:])
			cmd.Run(ctx, cmd, cmd.Flag.Args())
			stop()
			exit()
			return
		}
	}

	fmt.Fprintf(os.Stderr, "qpe-archiver: unknown subcommand %q\nRun 'qpe-archiver help' for usage.\n", args[0])
	setExitStatus(2)
	exit()
}

// configFile returns the file named by -config. The default file may be
// absent, in which case "" is returned and the built-in defaults apply.
func configFile() string {
	path := *configPath
	if path == defaultConfigPath {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return ""
		}
	}
	return path
}

func loadConfig() *config.Config {
	cfg, err := config.Load(configFile())
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

// newLogger builds the structured logger described by cfg. Logs go to stderr
// so that command output on stdout stays machine readable.
func newLogger(cfg *config.Config) *slog.Logger {
	logger, err := logging.New(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	return logger
}
