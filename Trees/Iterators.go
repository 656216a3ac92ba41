package Trees

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// cursor holds what both iterators share: the pending node indexes, the
// version snapshot and the element last handed out.
type cursor[T any, S constraints.Unsigned] struct {
	tree    *SplayTree[T, S]
	st      *arraystack.Stack // of S
	version uint
	last    T
	hasLast bool
}

// HasNext [Iterator.HasNext]
func (c *cursor[T, S]) HasNext() bool {
	c.skipDead()
	return !c.st.Empty()
}

// skipDead drops pending nodes freed by the iterator's own Remove.
func (c *cursor[T, S]) skipDead() {
	if c.version != c.tree.version {
		return
	}
	for top, ok := c.st.Peek(); ok && !c.tree.live(top.(S)); top, ok = c.st.Peek() {
		c.st.Pop()
	}
}

// pop the next node index after the fail-fast checks.
func (c *cursor[T, S]) pop() (S, error) {
	if c.version != c.tree.version {
		return 0, errors.WithStack(ErrConcurrentModification)
	}
	c.skipDead()
	top, ok := c.st.Pop()
	if !ok {
		return 0, errors.WithStack(ErrNoSuchElement)
	}
	return top.(S), nil
}

func (c *cursor[T, S]) yield(i S) T {
	c.last, c.hasLast = *c.tree.getV(i), true
	return c.last
}

// Remove [Iterator.Remove]
// The removal splays the tree, so the elements not yet visited may be skipped
// or repeated afterwards. A node can end up pending twice after such a
// restructure; entries whose node has been removed in the meantime are dropped.
// ErrIllegalState is also returned when the tree can't find the last element
// again, which only happens with an inconsistent comparator.
func (c *cursor[T, S]) Remove() error {
	if !c.hasLast {
		return errors.Wrap(ErrIllegalState, "remove without next")
	}
	if c.version != c.tree.version {
		return errors.WithStack(ErrConcurrentModification)
	}
	if !c.tree.Remove(c.last) {
		return errors.Wrap(ErrIllegalState, "last element no longer found in the tree")
	}
	c.last, c.hasLast = *new(T), false
	c.version = c.tree.version
	return nil
}

// PreOrderIterator visits a node before its left subtree and then its right
// subtree, following the tree's current physical layout.
type PreOrderIterator[T any, S constraints.Unsigned] struct {
	cursor[T, S]
}

// Iterator [Tree.Iterator]
func (u *SplayTree[T, S]) Iterator() Iterator[T] {
	it := &PreOrderIterator[T, S]{cursor[T, S]{tree: u, st: arraystack.New(), version: u.version}}
	if u.root != 0 {
		it.st.Push(u.root)
	}
	return it
}

// Next [Iterator.Next]
func (it *PreOrderIterator[T, S]) Next() (T, error) {
	i, err := it.pop()
	if err != nil {
		return *new(T), err
	}
	if n := it.tree.ifs[i]; n.r != 0 {
		it.st.Push(n.r)
	}
	if n := it.tree.ifs[i]; n.l != 0 {
		it.st.Push(n.l)
	}
	return it.yield(i), nil
}

// InOrderIterator yields elements in ascending order.
type InOrderIterator[T any, S constraints.Unsigned] struct {
	cursor[T, S]
}

// InOrderIterator [Tree.InOrderIterator]
func (u *SplayTree[T, S]) InOrderIterator() Iterator[T] {
	it := &InOrderIterator[T, S]{cursor[T, S]{tree: u, st: arraystack.New(), version: u.version}}
	it.pushLeft(u.root)
	return it
}

func (it *InOrderIterator[T, S]) pushLeft(curI S) {
	for ; curI != 0; curI = it.tree.ifs[curI].l {
		it.st.Push(curI)
	}
}

// Next [Iterator.Next]
func (it *InOrderIterator[T, S]) Next() (T, error) {
	i, err := it.pop()
	if err != nil {
		return *new(T), err
	}
	it.pushLeft(it.tree.ifs[i].r)
	return it.yield(i), nil
}
