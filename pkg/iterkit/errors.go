package iterkit

import (
	"fmt"

	"go.llib.dev/moreiter/pkg/errorkit"
)

const (
	// ErrExhausted is the cause behind every failure that stems from a source running out of elements.
	ErrExhausted errorkit.Error = "iterkit: iterator exhausted"
	// ErrEmptyIterable is returned when a value was requested from an empty iterable without a default.
	ErrEmptyIterable errorkit.Error = "iterkit: empty iterable"
	ErrTooFewItems   errorkit.Error = "iterkit: too few items in iterable"
	ErrTooManyItems  errorkit.Error = "iterkit: too many items in iterable"
	// ErrUnevenChunking is yielded by strict chunking when the source does not divide evenly.
	ErrUnevenChunking  errorkit.Error = "iterkit: iterable is not divisible by n"
	ErrInvalidArgument errorkit.Error = "iterkit: invalid argument"

	ErrInvalidSize        errorkit.Error = "iterkit: invalid size"
	ErrStrictRequiresSize errorkit.Error = "iterkit: strict chunking requires a chunk size"
)

func invalidArgument(format string, a ...any) error {
	return ErrInvalidArgument.F(format, a...)
}

// CountError reports an arity violation along with the number of items observed.
type CountError struct {
	Kind  error
	Count int
	// AtLeast marks that the source was not drained,
	// so Count is a lower bound.
	AtLeast bool
}

func (err *CountError) Error() string {
	var qualifier string
	if err.AtLeast {
		qualifier = "at least "
	}
	return fmt.Sprintf("%s (got %s%d)", err.Kind, qualifier, err.Count)
}

func (err *CountError) Unwrap() error {
	return err.Kind
}
