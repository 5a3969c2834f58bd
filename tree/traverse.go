package tree

import "iter"

func (t *BinaryTree[T]) TraverseInOrder(process func(T)) {
	if t == nil {
		return
	}
	t.left.TraverseInOrder(process)
	process(t.value)
	t.right.TraverseInOrder(process)
}

func (t *BinaryTree[T]) TraversePreOrder(process func(T)) {
	if t == nil {
		return
	}
	process(t.value)
	t.left.TraversePreOrder(process)
	t.right.TraversePreOrder(process)
}

func (t *BinaryTree[T]) TraversePostOrder(process func(T)) {
	if t == nil {
		return
	}
	t.left.TraversePostOrder(process)
	t.right.TraversePostOrder(process)
	process(t.value)
}

// InOrder returns an iterator over the values of t in ascending order.
func (t *BinaryTree[T]) InOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		t.inOrder(yield)
	}
}

func (t *BinaryTree[T]) PreOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		t.preOrder(yield)
	}
}

func (t *BinaryTree[T]) PostOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		t.postOrder(yield)
	}
}

// The helpers below return false once yield has asked to stop.

func (t *BinaryTree[T]) inOrder(yield func(T) bool) bool {
	if t == nil {
		return true
	}
	return t.left.inOrder(yield) && yield(t.value) && t.right.inOrder(yield)
}

func (t *BinaryTree[T]) preOrder(yield func(T) bool) bool {
	if t == nil {
		return true
	}
	return yield(t.value) && t.left.preOrder(yield) && t.right.preOrder(yield)
}

func (t *BinaryTree[T]) postOrder(yield func(T) bool) bool {
	if t == nil {
		return true
	}
	return t.left.postOrder(yield) && t.right.postOrder(yield) && yield(t.value)
}

// Values returns the values of t in ascending order.
func (t *BinaryTree[T]) Values() []T {
	var values []T
	t.TraverseInOrder(func(v T) {
		values = append(values, v)
	})
	return values
}
