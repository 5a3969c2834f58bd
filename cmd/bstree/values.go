package main

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"bst_code/tree"
)

var errNoValues = errors.New("no values given")

// parseValues converts every argument to an int, reporting all bad arguments
// at once.
func parseValues(args []string) ([]int, error) {
	var values []int
	var errs []error
	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			errs = append(errs, fmt.Errorf("parse value %q: %w", arg, err))
			continue
		}
		values = append(values, v)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return values, nil
}

// treeFlags are shared by the commands that build a tree from arguments.
type treeFlags struct {
	persistent bool
}

func (tf *treeFlags) register(f *flag.FlagSet) {
	f.BoolVar(&tf.persistent, "persistent", false, "insert with persistent rebuilds instead of in place")
}

func (tf *treeFlags) discipline() tree.Discipline {
	if tf.persistent {
		return tree.Persistent
	}
	return tree.InPlace
}

func (tf *treeFlags) build(args []string) (*tree.BinaryTree[int], error) {
	values, err := parseValues(args)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, errNoValues
	}
	return tree.FromValues(tf.discipline(), values...), nil
}

func joinValues[T any](values []T) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, fmt.Sprint(v))
	}
	return strings.Join(parts, " ")
}
