// Package seqview provides a read-only view over a sequence.
//
// A View holds no copy of the elements.
// Every call reads through to the underlying sequence,
// so mutations made to the sequence after the View was created are visible through it.
package seqview

import (
	"iter"
	"reflect"

	"go.llib.dev/moreiter/pkg/iterkit"
)

// View is a read-only window on a Sequence.
type View[T comparable] struct {
	target iterkit.Sequence[T]
}

// New creates a View over target.
//
// The target must be an iterkit.Sequence[T], or a pointer to a slice,
// which lets the View follow length changes of the slice.
// A Sequence that is itself a slice or an array value, such as iterkit.List,
// is copied on the way in, so it is rejected; pass a pointer to it instead.
func New[T comparable](target any) (*View[T], error) {
	switch target := target.(type) {
	case iterkit.Sequence[T]:
		if k := reflect.TypeOf(target).Kind(); k == reflect.Slice || k == reflect.Array {
			return nil, iterkit.ErrInvalidArgument.F("%T is passed by value, a view needs a pointer to it", target)
		}
		return &View[T]{target: target}, nil
	case *[]T:
		if target == nil {
			break
		}
		return &View[T]{target: sliceRef[T]{ptr: target}}, nil
	}
	return nil, iterkit.ErrInvalidArgument.F("%T does not support the sequence protocol", target)
}

func (v *View[T]) Len() int {
	return v.target.Len()
}

// At returns the element at index i. A negative index counts from the end.
// Like slice indexing, it panics when i is out of range.
func (v *View[T]) At(i int) T {
	return v.target.At(i)
}

func (v *View[T]) Contains(value T) bool {
	return 0 <= v.Index(value)
}

// Index returns the index of the first occurrence of value, or -1 when it is not present.
func (v *View[T]) Index(value T) int {
	for i := 0; i < v.target.Len(); i++ {
		if v.target.At(i) == value {
			return i
		}
	}
	return -1
}

// Count returns the number of occurrences of value.
func (v *View[T]) Count(value T) int {
	var n int
	for i := 0; i < v.target.Len(); i++ {
		if v.target.At(i) == value {
			n++
		}
	}
	return n
}

func (v *View[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.target.Len(); i++ {
			if !yield(v.target.At(i)) {
				return
			}
		}
	}
}

func (v *View[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := v.target.Len() - 1; 0 <= i; i-- {
			if v.target.Len() <= i {
				continue
			}
			if !yield(v.target.At(i)) {
				return
			}
		}
	}
}

type sliceRef[T any] struct {
	ptr *[]T
}

func (s sliceRef[T]) All() iter.Seq[T] { return iterkit.List[T](*s.ptr).All() }

func (s sliceRef[T]) Len() int { return len(*s.ptr) }

func (s sliceRef[T]) At(i int) T { return iterkit.List[T](*s.ptr).At(i) }
