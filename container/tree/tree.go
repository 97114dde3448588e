// Package tree implements an ordered binary search tree that
// applies no balancing strategy.
package tree

import "golang.org/x/exp/constraints"

// Node of a tree
type Node[T constraints.Ordered] struct {
	value T
	left  *Node[T]
	right *Node[T]
}

// NewNode creates a detached node holding v with the
// provided children. It can be used to build a subtree
// for NewWithRoot
func NewNode[T constraints.Ordered](v T, left, right *Node[T]) *Node[T] {
	return &Node[T]{value: v, left: left, right: right}
}

// Value returns the value held by the node
func (n *Node[T]) Value() T {
	return n.value
}

// Left returns the node's left child
func (n *Node[T]) Left() *Node[T] {
	return n.left
}

// Right returns the node's right child
func (n *Node[T]) Right() *Node[T] {
	return n.right
}

// Min returns the node in the subtree of the
// lowest order. It returns nil if the subtree
// is empty
func (n *Node[T]) Min() *Node[T] {
	if n == nil {
		return nil
	}

	curr := n
	for curr.left != nil {
		curr = curr.left
	}

	return curr
}

// Max returns the node in the subtree of the
// highest order. It returns nil if the subtree
// is empty
func (n *Node[T]) Max() *Node[T] {
	if n == nil {
		return nil
	}

	curr := n
	for curr.right != nil {
		curr = curr.right
	}

	return curr
}

// Find returns the node in the subtree that holds
// a value equal to v, or nil if there is none
func (n *Node[T]) Find(v T) *Node[T] {
	for curr := n; curr != nil; {
		switch compare(v, curr.value) {
		case -1:
			curr = curr.left
		case 1:
			curr = curr.right
		default:
			return curr
		}
	}

	return nil
}

// FindRecursive has the same semantics as Find but descends
// the subtree recursively
func (n *Node[T]) FindRecursive(v T) *Node[T] {
	if n == nil {
		return nil
	}

	switch compare(v, n.value) {
	case -1:
		return n.left.FindRecursive(v)
	case 1:
		return n.right.FindRecursive(v)
	default:
		return n
	}
}

// Tree represents a binary search tree. Values are kept
// in the order defined by the built-in comparison operators
// of T and no value is stored twice. No balancing strategy is
// applied, so the shape of the tree depends exclusively on
// the order of the insert and remove operations.
//
// A Tree is not safe for concurrent use.
type Tree[T constraints.Ordered] struct {
	root *Node[T]
	len  int
}

// New creates an empty tree
func New[T constraints.Ordered]() *Tree[T] {
	return &Tree[T]{}
}

// NewWithRoot creates a tree that owns the subtree rooted at
// root. The subtree must already satisfy the binary search
// tree ordering without duplicates, and must not be shared
// with any other tree
func NewWithRoot[T constraints.Ordered](root *Node[T]) *Tree[T] {
	t := &Tree[T]{root: root}
	root.PreOrderWalk(func(*Node[T]) bool {
		t.len++
		return true
	})

	return t
}

// Len returns the number of nodes in the tree
func (t *Tree[T]) Len() int {
	return t.len
}

// Empty returns true if the tree has no nodes
func (t *Tree[T]) Empty() bool {
	return t.root == nil
}

// Root returns the root of the tree. It returns
// nil for an empty tree
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// Min returns the node in the tree with the
// lowest value. It returns nil if the tree
// is empty
func (t *Tree[T]) Min() *Node[T] {
	return t.root.Min()
}

// Max returns the node in the tree with the
// highest value. It returns nil if the tree
// is empty
func (t *Tree[T]) Max() *Node[T] {
	return t.root.Max()
}

// Contains returns true if the tree holds v
func (t *Tree[T]) Contains(v T) bool {
	return t.root.Find(v) != nil
}

// Find returns the node in the tree that holds a
// value equal to v, or nil if v is not in the tree
func (t *Tree[T]) Find(v T) *Node[T] {
	return t.root.Find(v)
}

// FindRecursive returns the same node as Find
func (t *Tree[T]) FindRecursive(v T) *Node[T] {
	return t.root.FindRecursive(v)
}
