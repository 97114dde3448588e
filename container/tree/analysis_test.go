package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// medianOrder returns the values of sorted in the order in which
// they have to be inserted to get a balanced tree
func medianOrder(sorted []int) []int {
	if len(sorted) == 0 {
		return nil
	}

	mid := len(sorted) / 2
	res := []int{sorted[mid]}
	res = append(res, medianOrder(sorted[:mid])...)
	return append(res, medianOrder(sorted[mid+1:])...)
}

func TestTreeHeight(t *testing.T) {
	assert.Equal(t, -1, New[int]().Height())
	assert.Equal(t, 0, New[int]().Insert(1).Height())
	assert.Equal(t, 3, prePopulatedTree().Height())
	assert.Equal(t, 2, scenarioTree().Height())
}

func TestTreeIsBalancedEmpty(t *testing.T) {
	assert.True(t, New[int]().IsBalanced())
}

func TestTreeIsBalancedSingleNode(t *testing.T) {
	assert.True(t, New[int]().Insert(1).IsBalanced())
}

func TestTreeIsBalancedTwoNodes(t *testing.T) {
	assert.True(t, New[int]().Insert(1).Insert(2).IsBalanced())
}

func TestTreeIsBalancedChain(t *testing.T) {
	assert.False(t, New[int]().Insert(1).Insert(2).Insert(3).IsBalanced())
	assert.False(t, New[int]().Insert(3).Insert(2).Insert(1).IsBalanced())
}

func TestTreeIsBalancedPrePopulated(t *testing.T) {
	assert.True(t, prePopulatedTree().IsBalanced())
	assert.True(t, scenarioTree().IsBalanced())
}

func TestTreeIsBalancedSorted(t *testing.T) {
	var sorted []int
	for i := 1; i <= 10; i++ {
		sorted = append(sorted, i)
	}

	ascending := New[int]()
	for _, v := range sorted {
		ascending.Insert(v)
	}

	balanced := New[int]()
	for _, v := range medianOrder(sorted) {
		balanced.Insert(v)
	}

	assert.False(t, ascending.IsBalanced())
	assert.True(t, balanced.IsBalanced())
	assert.Equal(t, sorted, balanced.InOrder())
}

func TestTreeIsBalancedDeepSubtree(t *testing.T) {
	// both subtrees of the root have height 2, but the left
	// child of the root is unbalanced
	//
	//	       10
	//	    5      15
	//	   3      12 20
	//	  1         17
	tree := New[int]()
	for _, v := range []int{10, 5, 15, 3, 12, 20, 1, 17} {
		tree.Insert(v)
	}

	assert.Equal(t, 3, tree.Height())
	assert.False(t, tree.IsBalanced())
}

func TestTreeIsBalancedAfterRemove(t *testing.T) {
	tree := scenarioTree()

	tree.Remove(3)
	tree.Remove(7)
	assert.True(t, tree.IsBalanced())

	tree.Remove(12)
	tree.Insert(25)
	assert.False(t, tree.IsBalanced())
}

func TestTreeSecondHighestEmpty(t *testing.T) {
	v, ok := New[int]().SecondHighest()
	assert.False(t, ok)
	assert.Equal(t, 0, v)
}

func TestTreeSecondHighestSingleNode(t *testing.T) {
	_, ok := New[int]().Insert(1).SecondHighest()
	assert.False(t, ok)
}

func TestTreeSecondHighestScenario(t *testing.T) {
	v, ok := scenarioTree().SecondHighest()
	assert.True(t, ok)
	assert.Equal(t, 15, v)
}

func TestTreeSecondHighestRootIsParent(t *testing.T) {
	v, ok := New[int]().Insert(1).Insert(2).SecondHighest()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestTreeSecondHighestRightChain(t *testing.T) {
	v, ok := New[int]().Insert(1).Insert(2).Insert(3).SecondHighest()
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestTreeSecondHighestRootIsMax(t *testing.T) {
	v, ok := New[int]().Insert(5).Insert(3).Insert(4).SecondHighest()
	assert.True(t, ok)
	assert.Equal(t, 4, v)
}

func TestTreeSecondHighestMaxWithLeftSubtree(t *testing.T) {
	tree := New[int]()
	for _, v := range []int{10, 5, 20, 15, 12, 17} {
		tree.Insert(v)
	}

	v, ok := tree.SecondHighest()
	assert.True(t, ok)
	assert.Equal(t, 17, v)
}

func TestTreeSecondHighestMatchesInOrder(t *testing.T) {
	tree := prePopulatedTree()

	for !tree.Empty() {
		values := tree.InOrder()
		v, ok := tree.SecondHighest()
		if len(values) < 2 {
			assert.False(t, ok)
		} else {
			assert.True(t, ok)
			assert.Equal(t, values[len(values)-2], v)
		}

		tree.Remove(tree.Root().Value())
	}
}
