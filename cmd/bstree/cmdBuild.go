package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/google/subcommands"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"

	"bst_code/internal/logging"
	"bst_code/tree"
)

type cmdBuild struct {
	treeFlags
	out io.Writer
}

func (cmd *cmdBuild) Name() string     { return "build" }
func (cmd *cmdBuild) Synopsis() string { return "insert values and print the resulting tree" }
func (cmd *cmdBuild) Usage() string {
	return "build [-persistent] <value>...\n"
}

func (cmd *cmdBuild) SetFlags(f *flag.FlagSet) {
	cmd.register(f)
}

func (cmd *cmdBuild) Execute(_ context.Context,
	f *flag.FlagSet,
	_ ...interface{}) subcommands.ExitStatus {
	logger := logging.WithScope(log.Logger, cmd.Name())
	t, err := cmd.build(f.Args())
	if err != nil {
		logging.ErrorUnwrapped(&logger, "invalid arguments", err)
		return subcommands.ExitUsageError
	}
	logger.Debug().
		Stringer("discipline", cmd.discipline()).
		Uint64("count", t.Count()).
		Msg("built tree")

	text, err := describe(t)
	if err != nil {
		logger.Error().Err(err).Msg("render failed")
		return subcommands.ExitFailure
	}
	fmt.Fprint(cmd.out, text)
	return subcommands.ExitSuccess
}

func describe(t *tree.BinaryTree[int]) (string, error) {
	var post []int
	t.TraversePostOrder(func(v int) { post = append(post, v) })
	var pre []int
	t.TraversePreOrder(func(v int) { pre = append(pre, v) })

	return pterm.DefaultBulletList.WithItems([]pterm.BulletListItem{
		{Level: 0, Text: fmt.Sprintf("count: %d", t.Count())},
		{Level: 0, Text: fmt.Sprintf("height: %d", t.Height())},
		{Level: 0, Text: "in-order: " + joinValues(t.Values())},
		{Level: 0, Text: "pre-order: " + joinValues(pre)},
		{Level: 0, Text: "post-order: " + joinValues(post)},
		{Level: 0, Text: "tree: " + t.String()},
	}).Srender()
}
