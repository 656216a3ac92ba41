package Trees

import "golang.org/x/exp/constraints"

// A node in the arena. l and r are indexes into the same arena, 0 means no child.
// The zero value is a leaf.
type info[S constraints.Unsigned] struct {
	l, r S
}

// rotateLeft performs a left rotation on the subtree whose root index is stored at ni.
// The right child takes the place of *ni. The slot is passed by reference so the
// rotated subtree keeps a single owner.
// Time: O(1); Space: O(1)
func (u *base[T, S]) rotateLeft(ni *S) {
	n := &u.ifs[*ni]
	rci := n.r

	n.r = u.ifs[rci].l
	u.ifs[rci].l = *ni
	*ni = rci
}

// rotateRight performs a right rotation on the subtree whose root index is stored at ni.
// Time: O(1); Space: O(1)
func (u *base[T, S]) rotateRight(ni *S) {
	n := &u.ifs[*ni]
	lci := n.l

	n.l = u.ifs[lci].r
	u.ifs[lci].r = *ni
	*ni = lci
}
