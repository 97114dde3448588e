package tree

import "github.com/phf/go-queue/queue"

// Visitor is called for each node visited by a walk. The walk
// stops as soon as it returns false
type Visitor[T any] func(n T) bool

// PreOrderWalk visits the node, then its left subtree and
// then its right subtree
func (n *Node[T]) PreOrderWalk(fn Visitor[*Node[T]]) {
	if n == nil {
		return
	}

	stack := []*Node[T]{n}
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !fn(curr) {
			return
		}

		// right is pushed first so that left is popped first
		if curr.right != nil {
			stack = append(stack, curr.right)
		}
		if curr.left != nil {
			stack = append(stack, curr.left)
		}
	}
}

// InOrderWalk visits the left subtree, then the node and then
// the right subtree, which yields the nodes in ascending order
func (n *Node[T]) InOrderWalk(fn Visitor[*Node[T]]) {
	var stack []*Node[T]

	for curr := n; curr != nil || len(stack) > 0; {
		if curr != nil {
			stack = append(stack, curr)
			curr = curr.left
			continue
		}

		curr = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !fn(curr) {
			return
		}

		curr = curr.right
	}
}

// PostOrderWalk visits the left subtree, then the right subtree
// and then the node
func (n *Node[T]) PostOrderWalk(fn Visitor[*Node[T]]) {
	var stack []*Node[T]
	var last *Node[T]

	for curr := n; curr != nil || len(stack) > 0; {
		if curr != nil {
			stack = append(stack, curr)
			curr = curr.left
			continue
		}

		top := stack[len(stack)-1]
		if top.right != nil && top.right != last {
			curr = top.right
			continue
		}

		if !fn(top) {
			return
		}

		last = top
		stack = stack[:len(stack)-1]
	}
}

// BreadthFirstWalk visits the nodes level by level, from left
// to right within each level
func (n *Node[T]) BreadthFirstWalk(fn Visitor[*Node[T]]) {
	if n == nil {
		return
	}

	frontier := queue.New()
	frontier.PushBack(n)

	for frontier.Len() > 0 {
		curr := frontier.PopFront().(*Node[T])
		if !fn(curr) {
			return
		}

		if curr.left != nil {
			frontier.PushBack(curr.left)
		}
		if curr.right != nil {
			frontier.PushBack(curr.right)
		}
	}
}

// PreOrderWalk walks the tree in pre order
func (t *Tree[T]) PreOrderWalk(fn Visitor[*Node[T]]) {
	t.root.PreOrderWalk(fn)
}

// InOrderWalk walks the tree in order
func (t *Tree[T]) InOrderWalk(fn Visitor[*Node[T]]) {
	t.root.InOrderWalk(fn)
}

// PostOrderWalk walks the tree in post order
func (t *Tree[T]) PostOrderWalk(fn Visitor[*Node[T]]) {
	t.root.PostOrderWalk(fn)
}

// BreadthFirstWalk walks the tree level by level
func (t *Tree[T]) BreadthFirstWalk(fn Visitor[*Node[T]]) {
	t.root.BreadthFirstWalk(fn)
}

// PreOrder returns the values of the tree in pre order
func (t *Tree[T]) PreOrder() []T {
	return t.collect(t.root.PreOrderWalk)
}

// InOrder returns the values of the tree in ascending order
func (t *Tree[T]) InOrder() []T {
	return t.collect(t.root.InOrderWalk)
}

// PostOrder returns the values of the tree in post order
func (t *Tree[T]) PostOrder() []T {
	return t.collect(t.root.PostOrderWalk)
}

// BreadthFirst returns the values of the tree level by level
func (t *Tree[T]) BreadthFirst() []T {
	return t.collect(t.root.BreadthFirstWalk)
}

func (t *Tree[T]) collect(walk func(Visitor[*Node[T]])) []T {
	values := make([]T, 0, t.len)
	walk(func(n *Node[T]) bool {
		values = append(values, n.value)
		return true
	})

	return values
}
