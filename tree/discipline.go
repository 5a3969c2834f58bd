package tree

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Discipline selects how FromValues inserts. Both produce the same shape from
// the same input.
type Discipline int

const (
	// InPlace inserts with Insert.
	InPlace Discipline = iota
	// Persistent inserts with WithInserted, building a new version per value.
	Persistent
)

func (d Discipline) String() string {
	switch d {
	case InPlace:
		return "in-place"
	case Persistent:
		return "persistent"
	}
	return fmt.Sprintf("Discipline(%d)", int(d))
}

// FromValues inserts values into an empty tree in order.
func FromValues[T constraints.Ordered](d Discipline, values ...T) *BinaryTree[T] {
	t := Empty[T]()
	for _, v := range values {
		if d == Persistent {
			t = t.WithInserted(v)
		} else {
			t = t.Insert(v)
		}
	}
	return t
}
