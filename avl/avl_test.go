package avl

import (
	"math/rand"
	"testing"

	"github.com/tdewolff/test"
)

func compareInts(a, b int) int {
	return a - b
}

func items(t *Tree[int]) []int {
	var is []int
	for n := t.First(); n != nil; n = n.Next() {
		is = append(is, n.Item)
	}
	return is
}

func TestTreeInsert(t *testing.T) {
	tree := New(compareInts)
	for _, i := range []int{5, 2, 8, 1, 9, 3, 7, 4, 6, 0} {
		tree.Insert(i)
	}
	test.T(t, tree.Len(), 10)
	test.T(t, items(tree), []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	test.T(t, tree.First().Item, 0)
	test.T(t, tree.Last().Item, 9)

	// equal items replace in place
	tree.Insert(5)
	test.T(t, tree.Len(), 10)
}

func TestTreeFind(t *testing.T) {
	tree := New(compareInts)
	for i := 0; i < 20; i += 2 {
		tree.Insert(i)
	}
	test.T(t, tree.Find(8).Item, 8)
	test.That(t, tree.Find(9) == nil)
	test.T(t, tree.FindWith(func(i int) int { return 12 - i }).Item, 12)
	test.That(t, tree.FindWith(func(i int) int { return 13 - i }) == nil)
}

func TestTreeNeighbors(t *testing.T) {
	tree := New(compareInts)
	for i := 0; i < 20; i += 2 {
		tree.Insert(i)
	}

	// probe between items
	prev, next := tree.Neighbors(func(i int) int { return 7 - i })
	test.T(t, prev.Item, 6)
	test.T(t, next.Item, 8)

	// probe on an item
	prev, next = tree.Neighbors(func(i int) int { return 8 - i })
	test.T(t, prev.Item, 6)
	test.T(t, next.Item, 10)

	// probe at the outer ends
	prev, next = tree.Neighbors(func(i int) int { return -1 - i })
	test.That(t, prev == nil)
	test.T(t, next.Item, 0)
	prev, next = tree.Neighbors(func(i int) int { return 100 - i })
	test.T(t, prev.Item, 18)
	test.That(t, next == nil)
}

func TestTreeRemove(t *testing.T) {
	tree := New(compareInts)
	nodes := map[int]*Node[int]{}
	for _, i := range []int{5, 2, 8, 1, 9, 3, 7, 4, 6, 0} {
		nodes[i] = tree.Insert(i)
	}

	// removing an inner node keeps all other handles valid
	tree.Remove(nodes[5])
	test.T(t, tree.Len(), 9)
	test.T(t, items(tree), []int{0, 1, 2, 3, 4, 6, 7, 8, 9})
	test.T(t, nodes[4].Next().Item, 6)
	test.T(t, nodes[6].Prev().Item, 4)

	tree.Remove(nodes[0])
	tree.Remove(nodes[9])
	test.T(t, items(tree), []int{1, 2, 3, 4, 6, 7, 8})
	test.T(t, tree.First().Item, 1)
	test.T(t, tree.Last().Item, 8)
}

func TestTreeRandom(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	tree := New(compareInts)
	nodes := map[int]*Node[int]{}
	for i := 0; i < 1000; i++ {
		if v := rnd.Intn(500); nodes[v] == nil {
			nodes[v] = tree.Insert(v)
		} else if rnd.Intn(2) == 0 {
			tree.Remove(nodes[v])
			nodes[v] = nil
		}
	}

	n := 0
	for _, node := range nodes {
		if node != nil {
			n++
		}
	}
	test.T(t, tree.Len(), n)

	is := items(tree)
	test.T(t, len(is), n)
	for i := 1; i < len(is); i++ {
		test.That(t, is[i-1] < is[i], "items out of order")
	}
	for i := len(is) - 1; 0 <= i; i-- {
		tree.Remove(nodes[is[i]])
	}
	test.T(t, tree.Len(), 0)
	test.That(t, tree.First() == nil)
}
