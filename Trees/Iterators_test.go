package Trees

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain[T any](t *testing.T, it Iterator[T]) []T {
	t.Helper()
	var res []T
	for it.HasNext() {
		v, err := it.Next()
		require.NoError(t, err)
		res = append(res, v)
	}
	return res
}

func TestIterator_Orders(t *testing.T) {
	s := New[int, uint]()
	insertAll(s, 5, 3, 4, 2, 6)
	assert.Equal(t, []int{6, 5, 3, 2, 4}, drain(t, s.Iterator()))
	assert.Equal(t, []int{2, 3, 4, 5, 6}, drain(t, s.InOrderIterator()))
	assert.Equal(t, s.ToSlice(), drain(t, s.Iterator()))
	assert.Equal(t, s.ToOrderedList(), drain(t, s.InOrderIterator()))
}

func TestIterator_Empty(t *testing.T) {
	s := New[int, uint]()
	for name, it := range map[string]Iterator[int]{"pre": s.Iterator(), "in": s.InOrderIterator()} {
		assert.False(t, it.HasNext(), name)
		_, err := it.Next()
		assert.True(t, errors.Is(err, ErrNoSuchElement), name)
	}
}

func TestIterator_NoSuchElement(t *testing.T) {
	s := New[int, uint]()
	insertAll(s, 1, 2)
	it := s.InOrderIterator()
	drain(t, it)
	_, err := it.Next()
	assert.ErrorIs(t, err, ErrNoSuchElement)
}

func TestIterator_FailFast(t *testing.T) {
	mutations := map[string]func(s *SplayTree[int, uint]){
		"insert": func(s *SplayTree[int, uint]) { s.Insert(100) },
		"remove": func(s *SplayTree[int, uint]) { s.Remove(3) },
		"clear":  func(s *SplayTree[int, uint]) { s.Clear() },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			s := New[int, uint]()
			insertAll(s, 5, 3, 8, 1)
			pre, in := s.Iterator(), s.InOrderIterator()
			_, err := pre.Next()
			require.NoError(t, err)
			mutate(s)
			_, err = pre.Next()
			assert.ErrorIs(t, err, ErrConcurrentModification)
			_, err = in.Next()
			assert.ErrorIs(t, err, ErrConcurrentModification)
			// not resumable
			_, err = in.Next()
			assert.ErrorIs(t, err, ErrConcurrentModification)
		})
	}
}

func TestIterator_ReadsDontInvalidate(t *testing.T) {
	s := New[int, uint]()
	insertAll(s, 5, 3, 8, 1)
	it := s.InOrderIterator()
	s.Find(8)
	s.Find(42)
	s.Remove(42)
	assert.False(t, s.Insert(3))
	_, err := it.Next()
	assert.NoError(t, err)
}

func TestIterator_RemoveBeforeNext(t *testing.T) {
	s := New[int, uint]()
	insertAll(s, 1, 2, 3)
	for _, it := range []Iterator[int]{s.Iterator(), s.InOrderIterator()} {
		assert.ErrorIs(t, it.Remove(), ErrIllegalState)
	}
}

func TestIterator_Remove(t *testing.T) {
	s := New[int, uint]()
	insertAll(s, 1, 2, 3, 4, 5, 6)
	it := s.InOrderIterator()
	v, err := it.Next()
	require.NoError(t, err)
	require.Equal(t, 1, v)
	require.NoError(t, it.Remove())
	assert.ErrorIs(t, it.Remove(), ErrIllegalState, "remove twice")
	assert.Equal(t, 5, s.Size())
	_, ok := s.Find(1)
	assert.False(t, ok)

	// the iterator keeps working after its own removal.
	_, err = it.Next()
	assert.NoError(t, err)

	// but not after someone else's.
	s.Remove(6)
	_, err = it.Next()
	assert.ErrorIs(t, err, ErrConcurrentModification)
	s.verify(t)
}

func TestIterator_RemoveLostElement(t *testing.T) {
	broken := false
	s := NewFunc[int, uint](func(a, b int) int {
		if broken {
			return 1
		}
		return a - b
	})
	insertAll(s, 1, 2, 3)
	it := s.InOrderIterator()
	_, err := it.Next()
	require.NoError(t, err)
	broken = true
	version := s.Version()
	assert.ErrorIs(t, it.Remove(), ErrIllegalState, "nothing was removed")
	assert.Equal(t, 3, s.Size())
	assert.Equal(t, version, s.Version())
	broken = false
	s.verify(t)
}

func TestIterator_RemoveAll(t *testing.T) {
	s := New[int, uint]()
	insertAll(s, 4, 2, 6, 1, 3, 5, 7)
	it := s.Iterator()
	removed := 0
	for it.HasNext() {
		_, err := it.Next()
		require.NoError(t, err)
		require.NoError(t, it.Remove())
		removed++
		s.verify(t)
	}
	assert.Equal(t, 7-s.Size(), removed)
}

func TestIterator_Interleaved(t *testing.T) {
	s := New[int, uint]()
	insertAll(s, 3, 1, 2)
	a, b := s.InOrderIterator(), s.InOrderIterator()
	va, _ := a.Next()
	vb, _ := b.Next()
	assert.Equal(t, va, vb)
	require.NoError(t, a.Remove())
	_, err := b.Next()
	assert.ErrorIs(t, err, ErrConcurrentModification, "a's removal invalidates b")
	_, err = a.Next()
	assert.NoError(t, err)
}
