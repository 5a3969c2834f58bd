package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"slices"

	"github.com/google/subcommands"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"

	"bst_code/internal/logging"
	"bst_code/internal/render"
	"bst_code/tree"
)

type cmdExpr struct {
	out io.Writer
}

func (cmd *cmdExpr) Name() string     { return "expr" }
func (cmd *cmdExpr) Synopsis() string { return "print an expression tree in prefix, infix and postfix order" }
func (cmd *cmdExpr) Usage() string    { return "expr\n" }

func (cmd *cmdExpr) SetFlags(f *flag.FlagSet) {}

func (cmd *cmdExpr) Execute(_ context.Context,
	_ *flag.FlagSet,
	_ ...interface{}) subcommands.ExitStatus {
	logger := logging.WithScope(log.Logger, cmd.Name())
	expr := expressionTree()

	shape, err := render.Sprint(expr)
	if err != nil {
		logger.Error().Err(err).Msg("render failed")
		return subcommands.ExitFailure
	}
	orders, err := pterm.DefaultBulletList.WithItems([]pterm.BulletListItem{
		{Level: 0, Text: "prefix: " + joinValues(slices.Collect(expr.PreOrder()))},
		{Level: 0, Text: "infix: " + joinValues(slices.Collect(expr.InOrder()))},
		{Level: 0, Text: "postfix: " + joinValues(slices.Collect(expr.PostOrder()))},
	}).Srender()
	if err != nil {
		logger.Error().Err(err).Msg("render failed")
		return subcommands.ExitFailure
	}
	fmt.Fprint(cmd.out, shape)
	fmt.Fprint(cmd.out, orders)
	return subcommands.ExitSuccess
}

// expressionTree builds 5*(a-10) + (-4)*(3/b) node by node. It is not a
// search tree; it only shows what each traversal order produces.
func expressionTree() *tree.BinaryTree[string] {
	leaf := tree.Singleton[string]
	empty := tree.Empty[string]()

	aMinus10 := tree.Node(leaf("a"), "-", leaf("10"))
	timesLeft := tree.Node(leaf("5"), "*", aMinus10)

	minus4 := tree.Node(empty, "-", leaf("4"))
	divide3ByB := tree.Node(leaf("3"), "/", leaf("b"))
	timesRight := tree.Node(minus4, "*", divide3ByB)

	return tree.Node(timesLeft, "+", timesRight)
}
