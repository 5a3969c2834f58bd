package tree

import (
	"fmt"

	"github.com/goose-lang/primitive"
	"github.com/goose-lang/std"
	"golang.org/x/exp/constraints"
)

// BinaryTree is a binary search tree over an ordered element type. The nil
// *BinaryTree is the empty tree, and every method accepts a nil receiver.
//
// Values equal to a node's value are placed in its left subtree, strictly
// greater values in its right subtree. Nothing rebalances the tree, so its
// shape is determined by insertion order and sorted input produces a chain.
// All operations recurse to the depth of the tree.
type BinaryTree[T constraints.Ordered] struct {
	left  *BinaryTree[T]
	value T
	right *BinaryTree[T]
}

func Empty[T constraints.Ordered]() *BinaryTree[T] {
	var t *BinaryTree[T]
	return t
}

// Node builds a tree from its parts without checking the ordering invariant.
// It is meant for trees that are not search trees (such as expression trees);
// use IsOrdered to check a tree built this way.
func Node[T constraints.Ordered](left *BinaryTree[T], value T, right *BinaryTree[T]) *BinaryTree[T] {
	return &BinaryTree[T]{left: left, value: value, right: right}
}

func Singleton[T constraints.Ordered](value T) *BinaryTree[T] {
	return Node(Empty[T](), value, Empty[T]())
}

func (t *BinaryTree[T]) IsEmpty() bool {
	return t == nil
}

// Value returns the value at the root, or the zero value for the empty tree.
func (t *BinaryTree[T]) Value() T {
	if t == nil {
		var zero T
		return zero
	}
	return t.value
}

func (t *BinaryTree[T]) Left() *BinaryTree[T] {
	if t == nil {
		return nil
	}
	return t.left
}

func (t *BinaryTree[T]) Right() *BinaryTree[T] {
	if t == nil {
		return nil
	}
	return t.right
}

// Insert adds v by modifying the tree in place and returns the root. The root
// only changes when t is empty, so callers should always use the result:
//
//	t = t.Insert(v)
//
// Insert must not be used on a tree that shares nodes with another version
// produced by WithInserted, since the change would show up in both.
func (t *BinaryTree[T]) Insert(v T) *BinaryTree[T] {
	if t == nil {
		return Singleton(v)
	}
	if v > t.value {
		t.right = t.right.Insert(v)
		primitive.Assert(t.right != nil)
	} else {
		t.left = t.left.Insert(v)
		primitive.Assert(t.left != nil)
	}
	return t
}

// WithInserted returns a new tree that also contains v, leaving t unchanged.
// Only the nodes on the path from the root to the new leaf are copied; the
// other subtrees are shared between t and the result.
func (t *BinaryTree[T]) WithInserted(v T) *BinaryTree[T] {
	if t == nil {
		return Singleton(v)
	}
	if v > t.value {
		return Node(t.left, t.value, t.right.WithInserted(v))
	}
	return Node(t.left.WithInserted(v), t.value, t.right)
}

// Search returns the subtree whose root is the first node on the search path
// holding v. The result is a node of t, not a copy.
func (t *BinaryTree[T]) Search(v T) (*BinaryTree[T], bool) {
	if t == nil {
		return nil, false
	}
	if v == t.value {
		return t, true
	}
	if v > t.value {
		return t.right.Search(v)
	}
	return t.left.Search(v)
}

func (t *BinaryTree[T]) Contains(v T) bool {
	_, ok := t.Search(v)
	return ok
}

// Count returns the number of values in the tree. It walks the whole tree on
// every call.
func (t *BinaryTree[T]) Count() uint64 {
	if t == nil {
		return 0
	}
	return std.SumAssumeNoOverflow(std.SumAssumeNoOverflow(t.left.Count(), 1), t.right.Count())
}

// Height returns the number of nodes on the longest path from the root to a
// leaf; the empty tree has height 0.
func (t *BinaryTree[T]) Height() uint64 {
	if t == nil {
		return 0
	}
	return std.SumAssumeNoOverflow(max(t.left.Height(), t.right.Height()), 1)
}

// IsOrdered reports whether every node satisfies the search tree invariant:
// values in the left subtree are <= the node's value and values in the right
// subtree are greater.
func (t *BinaryTree[T]) IsOrdered() bool {
	return t.orderedWithin(nil, nil)
}

// orderedWithin checks that all values lie in (lo, hi], where a nil bound is
// unbounded.
func (t *BinaryTree[T]) orderedWithin(lo *T, hi *T) bool {
	if t == nil {
		return true
	}
	if lo != nil && !(t.value > *lo) {
		return false
	}
	if hi != nil && t.value > *hi {
		return false
	}
	return t.left.orderedWithin(lo, &t.value) && t.right.orderedWithin(&t.value, hi)
}

// String renders the tree for debugging as
//
//	value: v, left = [...], right = [...]
//
// with the empty tree rendered as "".
func (t *BinaryTree[T]) String() string {
	if t == nil {
		return ""
	}
	return fmt.Sprintf("value: %v, left = [%s], right = [%s]", t.value, t.left.String(), t.right.String())
}
