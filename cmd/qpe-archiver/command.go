package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
)

// A Command is a subcommand of qpe-archiver.
type Command struct {
	// Run runs the command. The args are the arguments after the command name.
	Run func(ctx context.Context, cmd *Command, args []string)

	// UsageLine is the one-line usage message. The first word is the command name.
	UsageLine string

	// Short is the short description shown in the 'qpe-archiver help' output.
	Short string

	// Long is the long message shown in the 'qpe-archiver help <this-command>' output.
	Long string

	// Flag is a set of flags specific to this command.
	Flag flag.FlagSet
}

// Name returns the command's name: the first word in the usage line.
func (c *Command) Name() string {
	name, _, _ := strings.Cut(c.UsageLine, " ")
	return name
}

func (c *Command) Usage() {
	fmt.Fprintf(os.Stderr, "usage: qpe-archiver %s\n\n", c.UsageLine)
	fmt.Fprintf(os.Stderr, "%s\n", strings.TrimSpace(c.Long))
	c.Flag.SetOutput(os.Stderr)
	c.Flag.PrintDefaults()
	os.Exit(2)
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: qpe-archiver [-config file] command [arguments]\n\nThe commands are:\n\n")
	for _, cmd := range commands {
		fmt.Fprintf(os.Stderr, "    %-11s %s\n", cmd.Name(), cmd.Short)
	}
	fmt.Fprintf(os.Stderr, "\nUse \"qpe-archiver help [command]\" for more information about a command.\n")
	os.Exit(2)
}

func help(args []string) {
	if len(args) == 0 {
		usage()
	}
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "usage: qpe-archiver help command\n\nToo many arguments given.\n")
		os.Exit(2)
	}

	for _, cmd := range commands {
		if cmd.Name() == args[0] {
			fmt.Printf("usage: qpe-archiver %s\n\n%s\n", cmd.UsageLine, strings.TrimSpace(cmd.Long))
			cmd.Flag.SetOutput(os.Stdout)
			cmd.Flag.PrintDefaults()
			return
		}
	}

	fmt.Fprintf(os.Stderr, "Unknown help topic %q. Run 'qpe-archiver help'.\n", args[0])
	os.Exit(2)
}
