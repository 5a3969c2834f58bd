package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"

	"bst_code/internal/logging"
)

func main() {
	logLevel := flag.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	noColor := flag.Bool("no-color", false, "disable colored output")

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&cmdBuild{out: os.Stdout}, "")
	subcommands.Register(&cmdSearch{out: os.Stdout}, "")
	subcommands.Register(&cmdShow{out: os.Stdout}, "")
	subcommands.Register(&cmdExpr{out: os.Stdout}, "")
	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -log-level: %v\n", err)
		os.Exit(int(subcommands.ExitUsageError))
	}
	if *noColor {
		pterm.DisableStyling()
	}
	logging.SetGlobalLogger(os.Stderr, level, *noColor)

	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
