package tree

import "golang.org/x/exp/constraints"

// side identifies the child slot a node occupies in its parent
type side uint8

const (
	rootSide side = iota
	leftSide
	rightSide
)

// Insert v into the tree by preserving the Binary Search Tree
// properties but without applying any balancing algorithm. If
// the tree already holds v the tree is left untouched. It
// returns the tree so that calls can be chained
func (t *Tree[T]) Insert(v T) *Tree[T] {
	var parent *Node[T]
	s := rootSide

	for curr := t.root; curr != nil; {
		parent = curr
		switch compare(v, curr.value) {
		case -1:
			s = leftSide
			curr = curr.left
		case 1:
			s = rightSide
			curr = curr.right
		default:
			return t
		}
	}

	t.attach(parent, s, &Node[T]{value: v})
	t.len++
	return t
}

// InsertRecursive inserts v in the same position Insert would,
// descending recursively and relinking each visited parent to the
// subtree returned by its child on the way back up
func (t *Tree[T]) InsertRecursive(v T) *Tree[T] {
	var inserted bool
	t.root = insertRecursive(t.root, v, &inserted)
	if inserted {
		t.len++
	}

	return t
}

func insertRecursive[T constraints.Ordered](n *Node[T], v T, inserted *bool) *Node[T] {
	if n == nil {
		*inserted = true
		return &Node[T]{value: v}
	}

	switch compare(v, n.value) {
	case -1:
		n.left = insertRecursive(n.left, v, inserted)
	case 1:
		n.right = insertRecursive(n.right, v, inserted)
	}

	return n
}

// Remove the node holding v from the tree. It returns the removed
// value and true, or the zero value and false when the tree does
// not hold v, in which case the tree is not modified
func (t *Tree[T]) Remove(v T) (T, bool) {
	n, parent, s := t.locate(v)
	if n == nil {
		var zero T
		return zero, false
	}

	removed := n.value

	if n.left != nil && n.right != nil {
		// the successor is the leftmost node of the right subtree,
		// so it has no left child and can be detached like a node
		// with at most one child
		succParent, succ, succSide := n, n.right, rightSide
		for succ.left != nil {
			succParent, succ, succSide = succ, succ.left, leftSide
		}

		n.value = succ.value
		t.detach(succ, succParent, succSide)
	} else {
		t.detach(n, parent, s)
	}

	t.len--
	return removed, true
}

// locate returns the node holding v together with its parent and
// the side of the parent it hangs from. The node is nil if v is
// not in the tree
func (t *Tree[T]) locate(v T) (n *Node[T], parent *Node[T], s side) {
	s = rootSide

	for curr := t.root; curr != nil; {
		switch compare(v, curr.value) {
		case -1:
			parent, s, curr = curr, leftSide, curr.left
		case 1:
			parent, s, curr = curr, rightSide, curr.right
		default:
			return curr, parent, s
		}
	}

	return nil, nil, rootSide
}

// detach removes n, which must have at most one child, from the
// slot it occupies and moves its child, if any, into that slot
func (t *Tree[T]) detach(n *Node[T], parent *Node[T], s side) {
	child := n.left
	if child == nil {
		child = n.right
	}

	t.attach(parent, s, child)
	n.left = nil
	n.right = nil
}

// attach places n in the s slot of parent, or as the root of
// the tree for rootSide
func (t *Tree[T]) attach(parent *Node[T], s side, n *Node[T]) {
	switch s {
	case rootSide:
		t.root = n
	case leftSide:
		parent.left = n
	case rightSide:
		parent.right = n
	default:
		panic("unreachable statement")
	}
}
