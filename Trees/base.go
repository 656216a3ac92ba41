package Trees

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

type base[T any, S constraints.Unsigned] struct {
	root, free S         // free is the beginning of the linked list that contains all the free indexes; info[S].l represents next.
	n          S         // number of live nodes.
	ifs        []info[S] // ifs[0] is the nil sentinel and is never linked. all indexes are based on ifs.
	vs         []T       // vs[i-1] corresponds to ifs[i].
}

func makeBase[T any, S constraints.Unsigned]() base[T, S] {
	return base[T, S]{ifs: make([]info[S], 1)}
}

// addFree index once. The element slot is zeroed so the arena doesn't retain it.
// A free node points r at itself, which no live node does.
func (u *base[T, S]) addFree(a S) {
	u.vs[a-1] = *new(T)
	u.ifs[a] = info[S]{l: u.free, r: a}
	u.free = a
	u.n--
}

func (u *base[T, S]) live(i S) bool {
	return u.ifs[i].r != i
}

// popFree index once. Returns 0 when there's no free index(when u.free==0).
func (u *base[T, S]) popFree() S {
	b := u.free
	u.free = u.ifs[u.free].l
	return b
}

// alloc a detached node holding v. Holes are filled first before appending to the arena.
func (u *base[T, S]) alloc(v T) S {
	i := u.popFree()
	if i == 0 {
		if uint64(len(u.ifs)) > uint64(^S(0)) {
			panic(errors.Wrapf(ErrCapacity, "index type holds at most %d nodes", uint64(^S(0))))
		}
		u.ifs = append(u.ifs, info[S]{})
		u.vs = append(u.vs, v)
		i = S(len(u.ifs) - 1)
	} else {
		u.ifs[i] = info[S]{}
		u.vs[i-1] = v
	}
	u.n++
	return i
}

func (u *base[T, S]) getV(i S) *T {
	return &u.vs[i-1]
}

// maxOf walks the right spine of the subtree rooted at curI.
func (u *base[T, S]) maxOf(curI S) S {
	for u.ifs[curI].r != 0 {
		curI = u.ifs[curI].r
	}
	return curI
}

func (u *base[T, S]) minOf(curI S) S {
	for u.ifs[curI].l != 0 {
		curI = u.ifs[curI].l
	}
	return curI
}

// height of the subtree rooted at curI, -1 for an empty subtree. Iterative since
// an unsplayed tree can degrade into a chain as long as the tree is large.
func (u *base[T, S]) height(curI S) int {
	if curI == 0 {
		return -1
	}
	type frame struct {
		i S
		d int
	}
	h := 0
	st := arraystack.New() // of frame
	st.Push(frame{curI, 0})
	for x, ok := st.Pop(); ok; x, ok = st.Pop() {
		top := x.(frame)
		h = max(h, top.d)
		if c := u.ifs[top.i]; c.l != 0 {
			st.Push(frame{c.l, top.d + 1})
		}
		if c := u.ifs[top.i]; c.r != 0 {
			st.Push(frame{c.r, top.d + 1})
		}
	}
	return h
}

// inOrder traversal of the subtree rooted at curI using an explicit stack. Stops early when f returns false.
func (u *base[T, S]) inOrder(curI S, f func(*T) bool) {
	st := arraystack.New() // of S
	for ; curI != 0; curI = u.ifs[curI].l {
		st.Push(curI)
	}
	for x, ok := st.Pop(); ok; x, ok = st.Pop() {
		curI = x.(S)
		if !f(u.getV(curI)) {
			return
		}
		for curI = u.ifs[curI].r; curI != 0; curI = u.ifs[curI].l {
			st.Push(curI)
		}
	}
}

// preOrder traversal of the subtree rooted at curI. f receives the node index.
func (u *base[T, S]) preOrder(curI S, f func(S) bool) {
	if curI == 0 {
		return
	}
	st := arraystack.New() // of S
	st.Push(curI)
	for x, ok := st.Pop(); ok; x, ok = st.Pop() {
		curI = x.(S)
		if !f(curI) {
			return
		}
		if c := u.ifs[curI]; c.r != 0 {
			st.Push(c.r)
		}
		if c := u.ifs[curI]; c.l != 0 {
			st.Push(c.l)
		}
	}
}

// Clear the arena. Doesn't release the underlying arrays.
func (u *base[T, S]) clear() {
	clear(u.vs)
	u.ifs, u.vs = u.ifs[:1], u.vs[:0]
	u.ifs[0] = info[S]{}
	u.root, u.free, u.n = 0, 0, 0
}
