package iterkit

import (
	"iter"
)

// Interleave yields the first element of every iterator, then the second of every iterator, and so on.
// Only whole rounds are yielded: it stops as soon as any iterator runs out,
// and the partial round is dropped.
func Interleave[T any](is ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if len(is) == 0 {
			return
		}
		var nexts = make([]func() (T, bool), 0, len(is))
		for _, i := range is {
			if i == nil {
				return
			}
			next, stop := iter.Pull(i)
			defer stop()
			nexts = append(nexts, next)
		}
		var round = make([]T, len(nexts))
		for {
			for idx, next := range nexts {
				v, ok := next()
				if !ok {
					return
				}
				round[idx] = v
			}
			for _, v := range round {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// RepeatEach yields every element n times in a row.
// When n is not positive, nothing is yielded and the iterator is not consumed.
func RepeatEach[T any](i iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 || i == nil {
			return
		}
		for v := range i {
			for range n {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// SplitAfter splits the iterator into slices, each ending with an element that satisfies pred.
//
// With a positive maxSplit, at most maxSplit splits are made,
// and the remainder is yielded as the final slice, even if it is empty.
// A negative maxSplit means there is no limit,
// while zero yields the whole input as a single slice.
func SplitAfter[T any](i iter.Seq[T], pred func(T) bool, maxSplit int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if maxSplit == 0 {
			yield(Collect(i))
			return
		}
		if i == nil {
			return
		}
		var (
			buf    = make([]T, 0)
			splits int
			capped bool
		)
		for v := range i {
			buf = append(buf, v)
			if capped || !pred(v) {
				continue
			}
			if !yield(buf) {
				return
			}
			buf = make([]T, 0)
			splits++
			if 0 < maxSplit && splits == maxSplit {
				capped = true
			}
		}
		if capped || 0 < len(buf) {
			yield(buf)
		}
	}
}

// SplitInto yields one slice for each size, filled with that many consecutive elements of the iterator.
//
// When the iterator runs out, the remaining sizes get empty slices.
// An Unbounded size takes everything that is left and ends the splitting.
// Both the iterator and the sizes are consumed incrementally.
func SplitInto[T any](i iter.Seq[T], sizes iter.Seq[int]) SeqE[[]T] {
	return func(yield func([]T, error) bool) {
		if sizes == nil {
			return
		}
		src := i
		if src == nil {
			src = Empty[T]()
		}
		next, stop := iter.Pull(src)
		defer stop()
		for size := range sizes {
			switch {
			case size == Unbounded:
				yield(TakePullAll(next), nil)
				return
			case size < 0:
				yield(nil, ErrInvalidSize.Wrap(invalidArgument("split size must be non-negative or Unbounded, got %d", size)))
				return
			}
			if !yield(TakePull(next, size), nil) {
				return
			}
		}
	}
}

// MapIf transforms the elements that satisfy pred, and passes through the rest unchanged.
func MapIf[T any](i iter.Seq[T], pred func(T) bool, fn func(T) T) iter.Seq[T] {
	return MapIfElse(i, pred, fn, func(v T) T { return v })
}

// MapIfElse transforms the elements that satisfy pred with fn, and the rest with fnElse.
func MapIfElse[To, From any](i iter.Seq[From], pred func(From) bool, fn, fnElse func(From) To) iter.Seq[To] {
	if i == nil {
		return Empty[To]()
	}
	return Map(i, func(v From) To {
		if pred(v) {
			return fn(v)
		}
		return fnElse(v)
	})
}
