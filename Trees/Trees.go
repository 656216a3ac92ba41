package Trees

// Tree represents an ordered set of elements kept in a self-adjusting binary
// search tree. Receivers that have a bool as the second return value use it
// to indicate whether the first return value is defined. For example, calling
// Find on an empty tree returns (x T, false); x is then the zero value of T and
// shouldn't be used.
// Unlike a conventional search tree, read operations such as Find restructure
// the tree, so none of the receivers are safe for concurrent use, including
// the ones that look read-only. Callers must serialize access.
type Tree[T any] interface {
	//Insert v to the Tree. Returns true if a node was created or v was merged
	//into an existing element, false if an equal element exists and can't merge.
	Insert(v T) bool
	//Remove v from the Tree. Returns true if an element equal to v was removed.
	Remove(v T) bool
	//Find the stored element equal to v.
	Find(v T) (T, bool)
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(T) (T, bool)
	//Size of the tree.
	Size() int
	//Height of the tree, -1 when empty.
	Height() int
	IsEmpty() bool
	//Iterator over the current physical layout, node before children.
	Iterator() Iterator[T]
	//InOrderIterator yields elements in ascending order.
	InOrderIterator() Iterator[T]
	//ToOrderedList returns all elements in ascending order.
	ToOrderedList() []T
	String() string
}

// Iterator is a fail-fast cursor over a Tree. Once the tree changes its element
// count through anything but the iterator's own Remove, Next returns
// ErrConcurrentModification.
type Iterator[T any] interface {
	HasNext() bool
	Next() (T, error)
	//Remove the element returned by the last call to Next.
	Remove() error
}

// Mergeable is implemented by element types that can absorb another element
// with an equal key. Insert calls Merge on the stored element and discards the
// incoming one.
type Mergeable[T any] interface {
	Merge(other T) bool
}

// Comparable is implemented by element types that define their own total order.
// Compare returns a negative number, zero or a positive number when the receiver
// is less than, equal to or greater than o.
type Comparable[T any] interface {
	Compare(o T) int
}
