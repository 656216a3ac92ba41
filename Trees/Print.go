package Trees

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/xlab/treeprint"
)

func (u *SplayTree[T, S]) child(i S) string {
	if i == 0 {
		return "nil"
	}
	return fmt.Sprint(*u.getV(i))
}

// String renders every node in Iterator order as "[element, left, right]",
// using nil for missing children.
func (u *SplayTree[T, S]) String() string {
	var sb strings.Builder
	u.preOrder(u.root, func(i S) bool {
		if sb.Len() > 0 {
			sb.WriteString(", ")
		}
		n := u.ifs[i]
		fmt.Fprintf(&sb, "[%v, %s, %s]", *u.getV(i), u.child(n.l), u.child(n.r))
		return true
	})
	return sb.String()
}

// Dump draws the tree structure, one node per line, left child first. A
// missing child of a node with one child is drawn as nil so sides stay
// distinguishable.
func (u *SplayTree[T, S]) Dump() string {
	if u.root == 0 {
		return "<empty>\n"
	}
	type frame struct {
		i S
		t treeprint.Tree
	}
	root := treeprint.NewWithRoot(fmt.Sprint(*u.getV(u.root)))
	st := arraystack.New() // of frame
	st.Push(frame{u.root, root})
	for x, ok := st.Pop(); ok; x, ok = st.Pop() {
		top := x.(frame)
		n := u.ifs[top.i]
		if n.l == 0 && n.r == 0 {
			continue
		}
		for _, c := range [2]S{n.l, n.r} {
			if c == 0 {
				top.t.AddNode("nil")
				continue
			}
			st.Push(frame{c, top.t.AddBranch(fmt.Sprint(*u.getV(c)))})
		}
	}
	return root.String()
}
