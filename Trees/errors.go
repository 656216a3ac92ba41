package Trees

import (
	"reflect"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidArgument is the panic value (wrapped) when a nil element is passed to the tree.
	ErrInvalidArgument = errors.New("invalid argument: nil element")
	// ErrConcurrentModification is returned by Iterator.Next once the tree's
	// element count changed behind the iterator's back.
	ErrConcurrentModification = errors.New("concurrent modification")
	// ErrNoSuchElement is returned by Iterator.Next when the iterator is exhausted.
	ErrNoSuchElement = errors.New("no such element")
	// ErrIllegalState is returned by Iterator.Remove when Next wasn't called
	// first, or when the element it returned can't be removed.
	ErrIllegalState = errors.New("illegal state")
	// ErrCapacity is the panic value (wrapped) when the arena outgrows its index type.
	ErrCapacity = errors.New("tree capacity exceeded")
)

// nilable reports whether values of T can be nil. Nil slices are valid keys.
func nilable[T any]() bool {
	switch reflect.TypeOf((*T)(nil)).Elem().Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return true
	}
	return false
}

// isNil reports whether v is nil. Only meaningful when nilable[T]() is true.
func isNil[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
