// Package iterkit provides operations over iter.Seq iterators and the small protocols around them.
//
// # Summary
//
// An iterator decouples the origin of the data from the consumer who uses it.
// An iterator represents an iterable list of elements
// whose length is not known until it is fully iterated, thus it can range from zero to infinity.
// Operations in this package are lazy wherever their contract allows it,
// and they never pull more elements from their source than the result requires.
//
// Sources that can do more than iterate advertise it through interfaces:
// a Sequence knows its length and allows indexed access,
// while a Reversible can iterate itself backwards.
// Operations that can take a shortcut with these capabilities
// classify their input with ShapeOf once, then dispatch on the result.
//
// Failable lazy results are expressed as SeqE,
// where a non-nil error is always the last element of the iteration.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
// https://en.wikipedia.org/wiki/Pipeline_(software)
package iterkit

import (
	"iter"
	"slices"
)

// SeqE is an iterator that can tell if the iteration ran into an issue.
// A non-nil error is the last element yielded.
type SeqE[T any] = iter.Seq2[T, error]

// SingleUseSeq is an iter.Seq[T] that can only iterated once.
// After iteration, it is expected to yield no more values.
type SingleUseSeq[T any] = iter.Seq[T]

// Slice turns a slice into an iterator.
func Slice[T any](slice []T) iter.Seq[T] {
	return slices.Values(slice)
}

// Collect drains the iterator into a slice.
func Collect[T any](i iter.Seq[T]) []T {
	if i == nil {
		return nil
	}
	var vs = make([]T, 0)
	for v := range i {
		vs = append(vs, v)
	}
	return vs
}

// CollectE drains a failable iterator into a slice,
// and stops at the first error.
func CollectE[T any](i SeqE[T]) ([]T, error) {
	if i == nil {
		return nil, nil
	}
	var vs = make([]T, 0)
	for v, err := range i {
		if err != nil {
			return vs, err
		}
		vs = append(vs, v)
	}
	return vs, nil
}

func Empty[T any]() iter.Seq[T] {
	return func(yield func(T) bool) {}
}

// SingleValue creates an iterator that yields one single element.
func SingleValue[T any](v T) iter.Seq[T] {
	return func(yield func(T) bool) { yield(v) }
}

// Head takes the first n element, similarly how the coreutils "head" app works.
func Head[T any](i iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		var count int
		for v := range i {
			if !yield(v) {
				return
			}
			count++
			if count == n {
				return
			}
		}
	}
}

// TakePull takes the next n values from a pull iterator.
// It does not call next once n values are taken.
func TakePull[T any](next func() (T, bool), n int) []T {
	var vs = make([]T, 0)
	for i := 0; i < n; i++ {
		v, ok := next()
		if !ok {
			break
		}
		vs = append(vs, v)
	}
	return vs
}

// TakePullAll takes all the remaining values from a pull iterator.
func TakePullAll[T any](next func() (T, bool)) []T {
	var vs = make([]T, 0)
	for {
		v, ok := next()
		if !ok {
			break
		}
		vs = append(vs, v)
	}
	return vs
}

// Map allows you to do additional transformation on the values.
// This is useful in cases, where you have to alter the input value,
// or change the type all together.
func Map[To any, From any](i iter.Seq[From], transform func(From) To) iter.Seq[To] {
	return func(yield func(To) bool) {
		for v := range i {
			if !yield(transform(v)) {
				break
			}
		}
	}
}

func Count[T any](i iter.Seq[T]) int {
	var total int
	for range i {
		total++
	}
	return total
}

// IntRange returns an iterator that will range between the specified `begin` and the `end` int.
func IntRange(begin, end int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; begin+i < end+1; i++ {
			if !yield(begin + i) {
				break
			}
		}
	}
}

// Reverse will reverse the iteration direction.
//
// # WARNING
//
// It does not work with infinite iterators,
// as it requires to collect all values before it can reverse the elements.
func Reverse[T any](i iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		var vs []T = Collect(i)
		for i := len(vs) - 1; 0 <= i; i-- {
			if !yield(vs[i]) {
				return
			}
		}
	}
}
