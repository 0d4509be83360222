package iterkit

import (
	"iter"

	"go.llib.dev/moreiter/pkg/errorkit"
	"go.llib.dev/moreiter/port/option"
)

// Policy decides what happens when an iterable has the wrong number of elements.
// The zero value reports the default error of the operation.
type Policy struct {
	err    error
	handle func(count int) error
}

// Raise reports the given error instead of the default one.
func Raise(err error) Policy {
	return Policy{err: err}
}

// Handle calls fn with the number of items observed.
// The returned error is reported, and a nil error means the violation is ignored.
func Handle(fn func(count int) error) Policy {
	return Policy{handle: fn}
}

func (p Policy) resolve(count int, def func() error) error {
	switch {
	case p.handle != nil:
		return p.handle(count)
	case p.err != nil:
		return p.err
	default:
		return def()
	}
}

type ArityConfig struct {
	TooShort Policy
	TooLong  Policy
}

type ArityOption option.Option[ArityConfig]

// TooShort sets the policy for an iterable that has fewer elements than expected.
func TooShort(p Policy) ArityOption {
	return option.Func[ArityConfig](func(c *ArityConfig) { c.TooShort = p })
}

// TooLong sets the policy for an iterable that has more elements than expected.
func TooLong(p Policy) ArityOption {
	return option.Func[ArityConfig](func(c *ArityConfig) { c.TooLong = p })
}

// One returns the only element of the iterator.
//
// An empty iterator is reported as ErrTooFewItems,
// and an iterator with a second element as ErrTooManyItems.
// At most two elements are consumed from the iterator.
func One[T any](i iter.Seq[T], opts ...ArityOption) (T, error) {
	c := option.Use[ArityConfig](opts)
	first, second, count := firstTwo(i)
	var zero T
	switch count {
	case 0:
		err := c.TooShort.resolve(0, func() error {
			return &CountError{Kind: ErrTooFewItems, Count: 0}
		})
		if err != nil {
			return zero, errorkit.With(err).Cause(ErrExhausted)
		}
		return zero, nil
	case 1:
		return first, nil
	default:
		if err := c.TooLong.resolve(2, tooManyOne(first, second)); err != nil {
			return zero, err
		}
		return first, nil
	}
}

// Only returns the only element of the iterator, or the default value when the iterator is empty.
// An iterator with more than one element is reported as ErrTooManyItems.
// Only the TooLong policy is consulted, an empty iterator always results in def.
func Only[T any](i iter.Seq[T], def T, opts ...ArityOption) (T, error) {
	c := option.Use[ArityConfig](opts)
	first, second, count := firstTwo(i)
	switch count {
	case 0:
		return def, nil
	case 1:
		return first, nil
	default:
		if err := c.TooLong.resolve(2, tooManyOne(first, second)); err != nil {
			var zero T
			return zero, err
		}
		return first, nil
	}
}

func tooManyOne[T any](first, second T) func() error {
	return func() error {
		return errorkit.With(ErrTooManyItems).
			Detailf("expected exactly one item in iterable, but got %v, %v, and perhaps more", first, second)
	}
}

func firstTwo[T any](i iter.Seq[T]) (first, second T, count int) {
	if i == nil {
		return
	}
	for v := range i {
		count++
		if count == 1 {
			first = v
			continue
		}
		second = v
		break
	}
	return
}

// StrictlyN lazily yields the first n elements of the iterator,
// and reports when the iterator does not have exactly n elements.
//
// When the iterator runs out early, the TooShort policy receives the number of elements yielded.
// When the policy does not report an error, the iteration simply ends.
// After n elements, one more is pulled to check for excess.
// Excess elements are never yielded, and the TooLong policy receives n+1.
func StrictlyN[T any](i iter.Seq[T], n int, opts ...ArityOption) SeqE[T] {
	c := option.Use[ArityConfig](opts)
	return func(yield func(T, error) bool) {
		var zero T
		if n < 0 {
			yield(zero, invalidArgument("strictly n expects a non-negative n, got %d", n))
			return
		}
		var count int
		if i != nil {
			for v := range i {
				if count == n {
					err := c.TooLong.resolve(n+1, func() error {
						return &CountError{Kind: ErrTooManyItems, Count: n + 1, AtLeast: true}
					})
					if err != nil {
						yield(zero, err)
					}
					return
				}
				count++
				if !yield(v, nil) {
					return
				}
			}
		}
		if count < n {
			err := c.TooShort.resolve(count, func() error {
				return &CountError{Kind: ErrTooFewItems, Count: count}
			})
			if err != nil {
				yield(zero, err)
			}
		}
	}
}
