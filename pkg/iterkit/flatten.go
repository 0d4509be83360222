package iterkit

import (
	"iter"

	"go.llib.dev/moreiter/port/option"
	"golang.org/x/exp/constraints"
)

// ValueChain yields every argument,
// and expands the iterable ones by a single level.
//
// Strings and byte slices are yielded as they are.
// Slices and arrays yield their elements, maps their keys,
// channels the values received until they are closed,
// while iterator functions and Iterable implementations yield what they iterate.
// Map keys follow Go's map iteration order.
func ValueChain(args ...any) iter.Seq[any] {
	return func(yield func(any) bool) {
		baseTypes := DefaultBaseTypes()
		for _, arg := range args {
			if classify(arg, baseTypes) == ShapeScalar {
				if !yield(arg) {
					return
				}
				continue
			}
			for v := range valuesOf(arg) {
				if !yield(v) {
					return
				}
			}
		}
	}
}

type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

type DifferenceConfig[T any] struct {
	// Initial is the value the iterator was accumulated from.
	// When it is set, the first element is not part of the output.
	Initial    T
	HasInitial bool
}

type DifferenceOption[T any] option.Option[DifferenceConfig[T]]

// Initial tells Difference that the input is an accumulation that started from v.
func Initial[T any](v T) DifferenceOption[T] {
	return option.Func[DifferenceConfig[T]](func(c *DifferenceConfig[T]) {
		c.Initial = v
		c.HasInitial = true
	})
}

// Difference yields the first element, followed by the differences of successive elements.
// It is the inverse of a running sum.
func Difference[N Number](i iter.Seq[N], opts ...DifferenceOption[N]) iter.Seq[N] {
	return DifferenceFunc(i, func(current, previous N) N { return current - previous }, opts...)
}

// DifferenceFunc yields the first element, followed by fn applied on every successive pair.
func DifferenceFunc[T any](i iter.Seq[T], fn func(current, previous T) T, opts ...DifferenceOption[T]) iter.Seq[T] {
	c := option.Use[DifferenceConfig[T]](opts)
	return func(yield func(T) bool) {
		if i == nil {
			return
		}
		var (
			previous T
			started  bool
		)
		for v := range i {
			if !started {
				started = true
				previous = v
				if c.HasInitial {
					continue
				}
				if !yield(v) {
					return
				}
				continue
			}
			if !yield(fn(v, previous)) {
				return
			}
			previous = v
		}
	}
}
