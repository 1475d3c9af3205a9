// Package avl provides an ordered set backed by a self-balancing binary tree. Items are ordered by a comparator passed at construction, and elements are exposed as stable node handles supporting neighbor queries and constant-time removal. Handles stay valid while the item is in the tree, which containers keyed by a shifting comparator (such as a sweep line status) depend on.
package avl

import "sync"

// Node is an element of a Tree. A handle remains valid until the node is removed from its tree.
type Node[T any] struct {
	parent, left, right *Node[T]
	height              int

	Item T
}

// Prev returns the node before n in tree order, or nil.
func (n *Node[T]) Prev() *Node[T] {
	// go left
	if n.left != nil {
		n = n.left
		for n.right != nil {
			n = n.right // find the right-most of current subtree
		}
		return n
	}

	for n.parent != nil && n.parent.left == n {
		n = n.parent // find first parent for which we're right
	}
	return n.parent // can be nil
}

// Next returns the node after n in tree order, or nil.
func (n *Node[T]) Next() *Node[T] {
	// go right
	if n.right != nil {
		n = n.right
		for n.left != nil {
			n = n.left // find the left-most of current subtree
		}
		return n
	}

	for n.parent != nil && n.parent.right == n {
		n = n.parent // find first parent for which we're left
	}
	return n.parent // can be nil
}

func (n *Node[T]) balance() int {
	r := 0
	if n.left != nil {
		r -= n.left.height
	}
	if n.right != nil {
		r += n.right.height
	}
	return r
}

func (n *Node[T]) updateHeight() {
	n.height = 0
	if n.left != nil {
		n.height = n.left.height
	}
	if n.right != nil && n.height < n.right.height {
		n.height = n.right.height
	}
	n.height++
}

func (n *Node[T]) swapChild(a, b *Node[T]) {
	if n.right == a {
		n.right = b
	} else {
		n.left = b
	}
	if b != nil {
		b.parent = n
	}
}

func (a *Node[T]) rotateLeft() *Node[T] {
	b := a.right
	if a.parent != nil {
		a.parent.swapChild(a, b)
	} else {
		b.parent = nil
	}
	a.parent = b
	if a.right = b.left; a.right != nil {
		a.right.parent = a
	}
	b.left = a
	return b
}

func (a *Node[T]) rotateRight() *Node[T] {
	b := a.left
	if a.parent != nil {
		a.parent.swapChild(a, b)
	} else {
		b.parent = nil
	}
	a.parent = b
	if a.left = b.right; a.left != nil {
		a.left.parent = a
	}
	b.right = a
	return b
}

// Tree is an ordered set of items.
type Tree[T any] struct {
	cmp  func(a, b T) int
	root *Node[T]
	pool *sync.Pool
	n    int
}

// New returns an empty tree ordered by cmp.
func New[T any](cmp func(a, b T) int) *Tree[T] {
	return &Tree[T]{
		cmp:  cmp,
		pool: &sync.Pool{New: func() any { return &Node[T]{} }},
	}
}

// Len returns the number of items in the tree.
func (t *Tree[T]) Len() int {
	return t.n
}

func (t *Tree[T]) newNode(item T) *Node[T] {
	n := t.pool.Get().(*Node[T])
	n.parent = nil
	n.left = nil
	n.right = nil
	n.height = 1
	n.Item = item
	return n
}

func (t *Tree[T]) returnNode(n *Node[T]) {
	var zero T
	n.Item = zero // help the GC
	t.pool.Put(n)
}

// search descends the tree along cmp and returns the last node visited together with the direction taken from it: zero if the node matches, negative or positive if the probe belongs left or right of it.
func (t *Tree[T]) search(cmp func(T) int) (*Node[T], int) {
	n := t.root
	for n != nil {
		c := cmp(n.Item)
		if c < 0 {
			if n.left == nil {
				return n, -1
			}
			n = n.left
		} else if 0 < c {
			if n.right == nil {
				return n, 1
			}
			n = n.right
		} else {
			break
		}
	}
	return n, 0
}

func (t *Tree[T]) rebalance(n *Node[T]) {
	for {
		oheight := n.height
		if balance := n.balance(); balance == 2 {
			// Tree is excessively right-heavy, rotate it to the left.
			if n.right != nil && n.right.balance() < 0 {
				// Right tree is left-heavy, which would cause the next rotation to result in
				// overall left-heaviness. Rotate the right tree to the right to counteract this.
				n.right = n.right.rotateRight()
				n.right.right.updateHeight()
			}
			n = n.rotateLeft()
			n.left.updateHeight()
		} else if balance == -2 {
			// Tree is excessively left-heavy, rotate it to the right
			if n.left != nil && n.left.balance() > 0 {
				// The left tree is right-heavy, which would cause the next rotation to result in
				// overall right-heaviness. Rotate the left tree to the left to compensate.
				n.left = n.left.rotateLeft()
				n.left.left.updateHeight()
			}
			n = n.rotateRight()
			n.right.updateHeight()
		} else if balance < -2 || 2 < balance {
			panic("bug: tree too far out of shape")
		}

		n.updateHeight()
		if n.parent == nil {
			t.root = n
			return
		}
		if oheight == n.height {
			return
		}
		n = n.parent
	}
}

// First returns the left-most node, or nil for an empty tree.
func (t *Tree[T]) First() *Node[T] {
	if t.root == nil {
		return nil
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}
	return n
}

// Last returns the right-most node, or nil for an empty tree.
func (t *Tree[T]) Last() *Node[T] {
	if t.root == nil {
		return nil
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return n
}

// Find returns the node whose item compares equal to item, or nil.
func (t *Tree[T]) Find(item T) *Node[T] {
	return t.FindWith(func(i T) int {
		return t.cmp(item, i)
	})
}

// FindWith returns a node for which cmp returns zero, or nil. cmp must be consistent with the tree order; when several adjacent items compare zero an arbitrary one of them is returned.
func (t *Tree[T]) FindWith(cmp func(T) int) *Node[T] {
	n, c := t.search(cmp)
	if c == 0 {
		return n
	}
	return nil
}

// Neighbors returns the nodes immediately before and after the position described by cmp, which must be consistent with the tree order. When cmp matches an existing item, the neighbors of that node are returned. Either result can be nil at the outer ends.
func (t *Tree[T]) Neighbors(cmp func(T) int) (*Node[T], *Node[T]) {
	var prev, next *Node[T]
	n := t.root
	for n != nil {
		c := cmp(n.Item)
		if c < 0 {
			next = n
			n = n.left
		} else if 0 < c {
			prev = n
			n = n.right
		} else {
			return n.Prev(), n.Next()
		}
	}
	return prev, next
}

// Insert adds item to the tree and returns its node. An item comparing equal to an existing item replaces it in place.
func (t *Tree[T]) Insert(item T) *Node[T] {
	if t.root == nil {
		t.root = t.newNode(item)
		t.n++
		return t.root
	}

	rebalance := false
	n, cmp := t.search(func(i T) int {
		return t.cmp(item, i)
	})
	if cmp < 0 {
		// lower
		n.left = t.newNode(item)
		n.left.parent = n
		rebalance = n.right == nil
		n = n.left
	} else if 0 < cmp {
		// higher
		n.right = t.newNode(item)
		n.right.parent = n
		rebalance = n.left == nil
		n = n.right
	} else {
		// equal, replace
		n.Item = item
		return n
	}
	t.n++

	if rebalance {
		n.height++
		if n.parent != nil {
			t.rebalance(n.parent)
		}
	}
	return n
}

// Remove removes the node from the tree. Other node handles stay valid: nodes are relinked and items are never moved between nodes.
func (t *Tree[T]) Remove(n *Node[T]) {
	t.n--
	if n.left != nil && n.right != nil {
		// two children: relink the in-order successor into n's place
		o := n.right
		for o.left != nil {
			o = o.left
		}
		start := o
		if o.parent != n {
			start = o.parent
			o.parent.swapChild(o, o.right)
			o.right = n.right
			o.right.parent = o
		}
		o.left = n.left
		o.left.parent = o
		o.height = n.height
		if n.parent != nil {
			n.parent.swapChild(n, o)
		} else {
			o.parent = nil
			t.root = o
		}
		t.rebalance(start)
	} else {
		child := n.left
		if child == nil {
			child = n.right
		}
		if n.parent != nil {
			n.parent.swapChild(n, child)
			t.rebalance(n.parent)
		} else {
			t.root = child
			if child != nil {
				child.parent = nil
			}
		}
	}
	t.returnNode(n)
}
