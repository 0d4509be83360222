package iterkit

import (
	"iter"
	"reflect"

	"go.llib.dev/moreiter/port/option"
)

// AlwaysReversible iterates the iterable in reverse order.
//
// A Reversible iterates itself backwards, a Sequence is walked by index from the end,
// while any other Iterable is collected first, which is not possible with an infinite one.
func AlwaysReversible[T any](src Iterable[T]) iter.Seq[T] {
	if src == nil {
		return Empty[T]()
	}
	if r, ok := src.(Reversible[T]); ok {
		return r.Backward()
	}
	switch ShapeOf(src) {
	case ShapeSequence:
		seq := src.(Sequence[T])
		return func(yield func(T) bool) {
			for i := seq.Len() - 1; 0 <= i; i-- {
				if !yield(seq.At(i)) {
					return
				}
			}
		}
	default:
		if src.All() == nil {
			return Empty[T]()
		}
		return Reverse(src.All())
	}
}

type AlwaysIterableConfig struct {
	// BaseTypes are treated as atomic values even if they are iterable.
	BaseTypes []reflect.Type
}

func (c *AlwaysIterableConfig) Init() {
	c.BaseTypes = DefaultBaseTypes()
}

type AlwaysIterableOption option.Option[AlwaysIterableConfig]

// BaseTypes replaces the types that are treated as atomic values.
func BaseTypes(types ...reflect.Type) AlwaysIterableOption {
	return option.Func[AlwaysIterableConfig](func(c *AlwaysIterableConfig) {
		c.BaseTypes = types
	})
}

// NoBaseTypes makes every iterable value iterated,
// so a string yields its runes and a byte slice its bytes.
func NoBaseTypes() AlwaysIterableOption {
	return option.Func[AlwaysIterableConfig](func(c *AlwaysIterableConfig) {
		c.BaseTypes = nil
	})
}

// AlwaysIterable turns any value into an iterator.
//
// Nil yields nothing, a value of one of the base types or a non-iterable value is yielded alone,
// and an iterable value yields its elements the same way ValueChain expands them.
func AlwaysIterable(obj any, opts ...AlwaysIterableOption) iter.Seq[any] {
	c := option.Use[AlwaysIterableConfig](opts)
	if obj == nil {
		return Empty[any]()
	}
	if classify(obj, c.BaseTypes) == ShapeScalar {
		return SingleValue(obj)
	}
	return valuesOf(obj)
}
