package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"bst_code/internal/logging"
	"bst_code/internal/render"
)

type cmdShow struct {
	treeFlags
	out io.Writer
}

func (cmd *cmdShow) Name() string     { return "show" }
func (cmd *cmdShow) Synopsis() string { return "draw the shape of a tree" }
func (cmd *cmdShow) Usage() string {
	return "show [-persistent] <value>...\n"
}

func (cmd *cmdShow) SetFlags(f *flag.FlagSet) {
	cmd.register(f)
}

func (cmd *cmdShow) Execute(_ context.Context,
	f *flag.FlagSet,
	_ ...interface{}) subcommands.ExitStatus {
	logger := logging.WithScope(log.Logger, cmd.Name())
	t, err := cmd.build(f.Args())
	if err != nil {
		logging.ErrorUnwrapped(&logger, "invalid arguments", err)
		return subcommands.ExitUsageError
	}
	text, err := render.Sprint(t)
	if err != nil {
		logger.Error().Err(err).Msg("render failed")
		return subcommands.ExitFailure
	}
	fmt.Fprint(cmd.out, text)
	return subcommands.ExitSuccess
}
