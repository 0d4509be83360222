package iterkit

import (
	"iter"
	"math"

	"go.llib.dev/moreiter/pkg/errorkit"
	"go.llib.dev/moreiter/port/option"
)

// Unbounded marks an absent size: take everything that is left.
const Unbounded = -1

// Take eagerly collects at most n leading values of the iterator.
// When n is zero, the iterator is not touched at all.
func Take[T any](i iter.Seq[T], n int) ([]T, error) {
	if n < 0 {
		return nil, invalidArgument("take expects a non-negative count, got %d", n)
	}
	var vs = make([]T, 0)
	if n == 0 || i == nil {
		return vs, nil
	}
	for v := range i {
		vs = append(vs, v)
		if len(vs) == n {
			break
		}
	}
	return vs, nil
}

type ChunkConfig struct {
	// Strict makes chunking fail when the last chunk would be shorter than the chunk size.
	Strict bool
}

func (c ChunkConfig) Configure(t *ChunkConfig) {
	if c.Strict {
		t.Strict = true
	}
}

type ChunkOption option.Option[ChunkConfig]

// Strict makes Chunked yield ErrUnevenChunking instead of a short final chunk.
func Strict() ChunkOption {
	return ChunkConfig{Strict: true}
}

// Chunked breaks the iterator into chunks of n elements.
// The final chunk may be shorter unless Strict is used.
// With Unbounded as n, a single chunk holds every element.
//
// Chunks are produced lazily, so infinite iterators can be chunked as well.
func Chunked[T any](i iter.Seq[T], n int, opts ...ChunkOption) (SeqE[[]T], error) {
	c := option.Use[ChunkConfig](opts)
	if n < Unbounded {
		return nil, ErrInvalidSize.Wrap(invalidArgument("chunk size must be non-negative or Unbounded, got %d", n))
	}
	if c.Strict && n == Unbounded {
		return nil, ErrStrictRequiresSize.Wrap(ErrInvalidArgument)
	}
	return func(yield func([]T, error) bool) {
		if n == 0 || i == nil {
			return
		}
		next, stop := iter.Pull(i)
		defer stop()
		for {
			var chunk []T
			if n == Unbounded {
				chunk = TakePullAll(next)
			} else {
				chunk = TakePull(next, n)
			}
			if len(chunk) == 0 {
				return
			}
			if c.Strict && len(chunk) != n {
				yield(nil, ErrUnevenChunking.F("the last chunk has %d elements instead of %d", len(chunk), n))
				return
			}
			if !yield(chunk, nil) {
				return
			}
			if n == Unbounded {
				return
			}
		}
	}, nil
}

func emptyIterable() error {
	return errorkit.With(ErrEmptyIterable).Cause(ErrExhausted)
}

// First returns the first element of the iterator.
// An empty iterator results in ErrEmptyIterable.
func First[T any](i iter.Seq[T]) (T, error) {
	if i != nil {
		for v := range i {
			return v, nil
		}
	}
	var zero T
	return zero, emptyIterable()
}

// FirstOr returns the first element of the iterator, or the default value when it is empty.
func FirstOr[T any](i iter.Seq[T], def T) T {
	if v, err := First(i); err == nil {
		return v
	}
	return def
}

// Last returns the last element of the iterable.
//
// A Sequence is accessed by index, a Reversible is iterated backwards for one element,
// and any other Iterable is drained while only the most recent element is retained.
func Last[T any](src Iterable[T]) (T, error) {
	if v, ok := last(src); ok {
		return v, nil
	}
	var zero T
	return zero, emptyIterable()
}

// LastOr returns the last element of the iterable, or the default value when it is empty.
func LastOr[T any](src Iterable[T], def T) T {
	if v, ok := last(src); ok {
		return v
	}
	return def
}

func last[T any](src Iterable[T]) (T, bool) {
	var zero T
	if src == nil {
		return zero, false
	}
	switch ShapeOf(src) {
	case ShapeSequence:
		seq := src.(Sequence[T])
		if seq.Len() == 0 {
			return zero, false
		}
		return seq.At(-1), true
	case ShapeReversible:
		if backward := src.(Reversible[T]).Backward(); backward != nil {
			for v := range backward {
				return v, true
			}
		}
		return zero, false
	default:
		all := src.All()
		if all == nil {
			return zero, false
		}
		var (
			last T
			ok   bool
		)
		for v := range all {
			last = v
			ok = true
		}
		return last, ok
	}
}

// NthOrLast returns the element at index n,
// or the last element when the iterable is shorter than that.
func NthOrLast[T any](src Iterable[T], n int) (T, error) {
	if n < 0 {
		var zero T
		return zero, invalidArgument("nth expects a non-negative index, got %d", n)
	}
	return Last(head(src, throughIndex(n)))
}

// NthOrLastOr is NthOrLast with a default value for the empty iterable.
// A negative index is treated as an invalid argument, and results in the default value.
func NthOrLastOr[T any](src Iterable[T], n int, def T) T {
	if n < 0 {
		return def
	}
	return LastOr(head(src, throughIndex(n)), def)
}

// throughIndex is the number of elements up to and including index n.
func throughIndex(n int) int {
	if n == math.MaxInt {
		return n
	}
	return n + 1
}

func head[T any](src Iterable[T], n int) Iterable[T] {
	if src == nil || src.All() == nil {
		return Seq[T](Empty[T]())
	}
	return Seq[T](Head(src.All(), n))
}
