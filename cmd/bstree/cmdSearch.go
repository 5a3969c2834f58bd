package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"bst_code/internal/logging"
)

var errNoSearchValue = errors.New("-value is required")

type cmdSearch struct {
	treeFlags
	out      io.Writer
	argValue string
}

func (cmd *cmdSearch) Name() string     { return "search" }
func (cmd *cmdSearch) Synopsis() string { return "search a tree for one value" }
func (cmd *cmdSearch) Usage() string {
	return "search [-persistent] -value N <value>...\n" +
		"Exits with status 1 when N is not in the tree.\n"
}

func (cmd *cmdSearch) SetFlags(f *flag.FlagSet) {
	cmd.register(f)
	f.StringVar(&cmd.argValue, "value", "", "value to search for")
}

func (cmd *cmdSearch) Execute(_ context.Context,
	f *flag.FlagSet,
	_ ...interface{}) subcommands.ExitStatus {
	logger := logging.WithScope(log.Logger, cmd.Name())
	needle, err := cmd.needle()
	if err != nil {
		logging.ErrorUnwrapped(&logger, "invalid arguments", err)
		return subcommands.ExitUsageError
	}
	t, err := cmd.build(f.Args())
	if err != nil {
		logging.ErrorUnwrapped(&logger, "invalid arguments", err)
		return subcommands.ExitUsageError
	}

	found, ok := t.Search(needle)
	logger.Debug().Int("value", needle).Bool("found", ok).Msg("searched")
	if !ok {
		fmt.Fprintf(cmd.out, "%d not found\n", needle)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(cmd.out, "found %d in subtree of %d values: %s\n", needle, found.Count(), found)
	return subcommands.ExitSuccess
}

func (cmd *cmdSearch) needle() (int, error) {
	if cmd.argValue == "" {
		return 0, errNoSearchValue
	}
	v, err := strconv.Atoi(cmd.argValue)
	if err != nil {
		return 0, fmt.Errorf("parse -value %q: %w", cmd.argValue, err)
	}
	return v, nil
}
