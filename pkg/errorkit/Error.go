package errorkit

import (
	"errors"
	"fmt"
)

// Error is an implementation for the error interface that allow you to declare exported globals with the `const` keyword.
//
//	TL;DR:
//	  const ErrSomething errorkit.Error = "something is an error"
type Error string

// Error implement the error interface
func (err Error) Error() string { return string(err) }

// Wrap will bundle together another error value with this Error,
// and return an error value that matches both of them with errors.Is and errors.As.
func (err Error) Wrap(oth error) error {
	if oth == nil {
		return err
	}
	return kindError{Kind: err, Err: oth}
}

// F will format the error value and bundle it with the Error kind.
func (err Error) F(format string, a ...any) error { return err.Wrap(fmt.Errorf(format, a...)) }

type kindError struct {
	Kind Error
	Err  error // must be not nil
}

func (w kindError) Error() string {
	return fmt.Sprintf("[%s] %s", w.Kind, w.Err.Error())
}

func (w kindError) As(target any) bool {
	return errors.As(w.Kind, target) || errors.As(w.Err, target)
}

func (w kindError) Is(target error) bool {
	return errors.Is(w.Kind, target) || errors.Is(w.Err, target)
}
