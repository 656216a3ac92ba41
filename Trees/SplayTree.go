package Trees

import (
	"cmp"

	"github.com/emirpasic/gods/utils"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// SplayTree is a self-adjusting binary search tree with no repeated values.
// Every access splays the touched node, or the last node on the search path
// when the value is absent, to the root. Recently accessed elements are
// therefore cheap to reach again, and any sequence of m operations on a tree
// of n elements costs O(m log n). A single operation can still cost O(n).
// T is the type of values it holds, S is the type of the arena indexes; S
// bounds the number of nodes the tree can ever hold at once.
// Nodes live in an arena and refer to their children by index, so rotations
// are index reassignments and every subtree has exactly one owner.
// The tree isn't safe for concurrent use, not even for Find.
type SplayTree[T any, S constraints.Unsigned] struct {
	base[T, S]
	cmp     func(a, b T) int
	version uint // bumped whenever the number of elements changes.
	nilable bool // whether T values need a nil check.
}

var _ Tree[int] = (*SplayTree[int, uint])(nil)

// New returns an empty SplayTree ordered by cmp.Compare.
func New[T constraints.Ordered, S constraints.Unsigned]() *SplayTree[T, S] {
	return NewFunc[T, S](cmp.Compare[T])
}

// NewFunc returns an empty SplayTree ordered by c, which must define a strict
// total order: negative when a<b, zero when a==b, positive when a>b.
func NewFunc[T any, S constraints.Unsigned](c func(a, b T) int) *SplayTree[T, S] {
	return &SplayTree[T, S]{base: makeBase[T, S](), cmp: c, nilable: nilable[T]()}
}

// NewComparable returns an empty SplayTree of element types carrying their own order.
func NewComparable[T Comparable[T], S constraints.Unsigned]() *SplayTree[T, S] {
	return NewFunc[T, S](func(a, b T) int { return a.Compare(b) })
}

// NewWith returns an empty SplayTree ordered by a gods comparator, such as utils.IntComparator.
func NewWith[T any, S constraints.Unsigned](c utils.Comparator) *SplayTree[T, S] {
	return NewFunc[T, S](func(a, b T) int { return c(a, b) })
}

func (u *SplayTree[T, S]) check(v T) {
	if u.nilable && isNil(v) {
		panic(errors.WithStack(ErrInvalidArgument))
	}
}

// splay the subtree rooted at t top-down so that the node equal to v, or the
// last node visited while looking for it, becomes the subtree's root.
// The nodes passed on the way are linked into two accumulators: lRoot collects
// everything known to be smaller than v, rRoot everything known to be larger.
// lMax and rMin are the accumulators' boundary nodes where the next link or
// the final subtrees attach. A node moved into an accumulator has its slot
// towards t cleared at once, so t is never owned twice.
// Returns the new root index. t mustn't be 0.
func (u *SplayTree[T, S]) splay(t S, v T) S {
	var lRoot, lMax, rRoot, rMin S
	for {
		c := u.cmp(v, *u.getV(t))
		if c < 0 {
			if u.ifs[t].l == 0 {
				break
			}
			if u.cmp(v, *u.getV(u.ifs[t].l)) < 0 { // zig-zig
				u.rotateRight(&t)
				if u.ifs[t].l == 0 {
					break
				}
			}
			// zig: t and its right subtree are larger than v.
			if rRoot == 0 {
				rRoot = t
			} else {
				u.ifs[rMin].l = t
			}
			rMin = t
			t = u.ifs[t].l
			u.ifs[rMin].l = 0
		} else if c > 0 {
			if u.ifs[t].r == 0 {
				break
			}
			if u.cmp(v, *u.getV(u.ifs[t].r)) > 0 { // zig-zig
				u.rotateLeft(&t)
				if u.ifs[t].r == 0 {
					break
				}
			}
			if lRoot == 0 {
				lRoot = t
			} else {
				u.ifs[lMax].r = t
			}
			lMax = t
			t = u.ifs[t].r
			u.ifs[lMax].r = 0
		} else {
			break
		}
	}
	// assemble
	n := &u.ifs[t]
	if lRoot != 0 {
		u.ifs[lMax].r, n.l = n.l, lRoot
	}
	if rRoot != 0 {
		u.ifs[rMin].l, n.r = n.r, rRoot
	}
	return t
}

// Insert [Tree.Insert]
// An equal element that implements Mergeable absorbs v and the result of
// Merge is returned; the element count doesn't change.
// Panics with ErrInvalidArgument if v is nil.
// Time: amortized O(log n)
func (u *SplayTree[T, S]) Insert(v T) bool {
	u.check(v)
	if u.root == 0 {
		u.root = u.alloc(v)
		u.version++
		return true
	}
	u.root = u.splay(u.root, v)
	c := u.cmp(v, *u.getV(u.root))
	if c == 0 {
		if m, ok := any(*u.getV(u.root)).(Mergeable[T]); ok {
			return m.Merge(v)
		}
		return false
	}
	ni := u.alloc(v)
	n, r := &u.ifs[ni], &u.ifs[u.root]
	if c > 0 {
		n.l, n.r, r.r = u.root, r.r, 0
	} else {
		n.r, n.l, r.l = u.root, r.l, 0
	}
	u.root = ni
	u.version++
	return true
}

// Remove [Tree.Remove]
// A failed removal still leaves the tree splayed around v.
// Panics with ErrInvalidArgument if v is nil.
// Time: amortized O(log n)
func (u *SplayTree[T, S]) Remove(v T) bool {
	u.check(v)
	if u.root == 0 {
		return false
	}
	u.root = u.splay(u.root, v)
	if u.cmp(v, *u.getV(u.root)) != 0 {
		return false
	}
	old := u.root
	if l := u.ifs[old].l; l == 0 {
		u.root = u.ifs[old].r
	} else {
		// everything in l is smaller than v, so splaying for v brings l's
		// maximum up, which then has no right child.
		l = u.splay(l, v)
		u.ifs[l].r = u.ifs[old].r
		u.root = l
	}
	u.addFree(old)
	u.version++
	return true
}

// Find [Tree.Find]
// Find splays even when v is absent, so it changes the shape of the tree.
// Panics with ErrInvalidArgument if v is nil.
// Time: amortized O(log n)
func (u *SplayTree[T, S]) Find(v T) (T, bool) {
	u.check(v)
	if u.root == 0 {
		return *new(T), false
	}
	u.root = u.splay(u.root, v)
	if r := *u.getV(u.root); u.cmp(v, r) == 0 {
		return r, true
	}
	return *new(T), false
}

// Has is Find without the element.
func (u *SplayTree[T, S]) Has(v T) bool {
	_, ok := u.Find(v)
	return ok
}

// Minimum [Tree.Minimum]. The minimum is splayed to the root.
func (u *SplayTree[T, S]) Minimum() (T, bool) {
	if u.root == 0 {
		return *new(T), false
	}
	u.root = u.splay(u.root, *u.getV(u.minOf(u.root)))
	return *u.getV(u.root), true
}

// Maximum [Tree.Maximum]. The maximum is splayed to the root.
func (u *SplayTree[T, S]) Maximum() (T, bool) {
	if u.root == 0 {
		return *new(T), false
	}
	u.root = u.splay(u.root, *u.getV(u.maxOf(u.root)))
	return *u.getV(u.root), true
}

// Predecessor [Tree.Predecessor]
// The predecessor, if any, ends up at the root; otherwise the tree is left
// splayed around v.
// Panics with ErrInvalidArgument if v is nil.
// Time: amortized O(log n)
func (u *SplayTree[T, S]) Predecessor(v T) (T, bool) {
	u.check(v)
	if u.root == 0 {
		return *new(T), false
	}
	u.root = u.splay(u.root, v)
	if u.cmp(v, *u.getV(u.root)) > 0 {
		return *u.getV(u.root), true
	}
	// root>=v, so the answer is the maximum of the left subtree, and splaying
	// that subtree for v brings its maximum up without a right child.
	old := u.root
	l := u.ifs[old].l
	if l == 0 {
		return *new(T), false
	}
	l = u.splay(l, v)
	u.ifs[old].l, u.ifs[l].r = 0, old
	u.root = l
	return *u.getV(l), true
}

// Successor [Tree.Successor]
// The successor, if any, ends up at the root; otherwise the tree is left
// splayed around v.
// Panics with ErrInvalidArgument if v is nil.
// Time: amortized O(log n)
func (u *SplayTree[T, S]) Successor(v T) (T, bool) {
	u.check(v)
	if u.root == 0 {
		return *new(T), false
	}
	u.root = u.splay(u.root, v)
	if u.cmp(v, *u.getV(u.root)) < 0 {
		return *u.getV(u.root), true
	}
	old := u.root
	r := u.ifs[old].r
	if r == 0 {
		return *new(T), false
	}
	r = u.splay(r, v)
	u.ifs[old].r, u.ifs[r].l = 0, old
	u.root = r
	return *u.getV(r), true
}

// Root element of the tree, which is the most recently accessed one.
func (u *SplayTree[T, S]) Root() (T, bool) {
	if u.root == 0 {
		return *new(T), false
	}
	return *u.getV(u.root), true
}

// Size [Tree.Size]
// Time: O(1)
func (u *SplayTree[T, S]) Size() int {
	return int(u.n)
}

func (u *SplayTree[T, S]) IsEmpty() bool {
	return u.root == 0
}

// Height [Tree.Height]. 0 for a single node, -1 for an empty tree.
// Time: O(n)
func (u *SplayTree[T, S]) Height() int {
	return u.height(u.root)
}

// Version of the element set. It changes exactly when the element count does.
func (u *SplayTree[T, S]) Version() uint {
	return u.version
}

// Clear removes all elements.
func (u *SplayTree[T, S]) Clear() {
	if u.root != 0 {
		u.version++
	}
	u.clear()
}

// ToOrderedList [Tree.ToOrderedList]
func (u *SplayTree[T, S]) ToOrderedList() []T {
	res := make([]T, 0, u.n)
	u.inOrder(u.root, func(v *T) bool {
		res = append(res, *v)
		return true
	})
	return res
}

// ToSlice returns the elements in the order Iterator would yield them, which
// reflects the current physical layout of the tree.
func (u *SplayTree[T, S]) ToSlice() []T {
	res := make([]T, 0, u.n)
	u.preOrder(u.root, func(i S) bool {
		res = append(res, *u.getV(i))
		return true
	})
	return res
}
