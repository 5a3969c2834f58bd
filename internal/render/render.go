// Package render draws the shape of a tree.BinaryTree for the terminal.
package render

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"golang.org/x/exp/constraints"

	"bst_code/tree"
)

const emptyLabel = "(empty)"

// LeveledList flattens t in pre-order, one item per node, with the depth of
// the node as its level. Children are labelled L or R, so a node with a single
// child still shows which side it is on.
func LeveledList[T constraints.Ordered](t *tree.BinaryTree[T]) pterm.LeveledList {
	if t.IsEmpty() {
		return pterm.LeveledList{{Level: 0, Text: emptyLabel}}
	}
	var list pterm.LeveledList
	appendNode(&list, t, 0, "")
	return list
}

func appendNode[T constraints.Ordered](list *pterm.LeveledList, t *tree.BinaryTree[T], level int, side string) {
	if t.IsEmpty() {
		return
	}
	*list = append(*list, pterm.LeveledListItem{Level: level, Text: side + fmt.Sprint(t.Value())})
	appendNode(list, t.Left(), level+1, "L ")
	appendNode(list, t.Right(), level+1, "R ")
}

// Sprint renders t as an indented tree.
func Sprint[T constraints.Ordered](t *tree.BinaryTree[T]) (string, error) {
	root := putils.TreeFromLeveledList(LeveledList(t))
	return pterm.DefaultTree.WithRoot(root).Srender()
}
