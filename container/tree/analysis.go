package tree

// Height returns the number of edges in the longest path from
// the root to a leaf. The height of an empty tree is -1 and the
// height of a tree with a single node is 0
func (t *Tree[T]) Height() int {
	height, _ := t.heights(false)
	return height
}

// IsBalanced returns true if for every node in the tree the
// heights of its left and right subtrees differ by at most one.
// An empty tree is balanced
func (t *Tree[T]) IsBalanced() bool {
	_, balanced := t.heights(true)
	return balanced
}

// heights computes the height of every subtree bottom-up in a
// single post order pass. When stopUnbalanced is set the pass
// ends at the first unbalanced node, and the returned height
// is meaningless
func (t *Tree[T]) heights(stopUnbalanced bool) (int, bool) {
	heights := make(map[*Node[T]]int, t.len)
	height := func(n *Node[T]) int {
		if n == nil {
			return -1
		}
		return heights[n]
	}

	balanced := true
	t.root.PostOrderWalk(func(n *Node[T]) bool {
		left, right := height(n.left), height(n.right)
		if left-right > 1 || right-left > 1 {
			balanced = false
			if stopUnbalanced {
				return false
			}
		}

		heights[n] = 1 + max(left, right)
		return true
	})

	return height(t.root), balanced
}

// SecondHighest returns the largest value in the tree that is
// lower than the maximum. It returns the zero value and false
// when the tree has fewer than two nodes
func (t *Tree[T]) SecondHighest() (T, bool) {
	var zero T
	if t.root == nil {
		return zero, false
	}

	var parent *Node[T]
	curr := t.root
	for curr.right != nil {
		parent, curr = curr, curr.right
	}

	switch {
	case curr.left != nil:
		return curr.left.Max().value, true
	case parent != nil:
		return parent.value, true
	default:
		return zero, false
	}
}
