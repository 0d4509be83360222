package errorkit

import (
	"errors"
	"fmt"
)

func With(err error) WithBuilder { return WithBuilder{Err: err} }

type WithBuilder struct{ Err error }

func (w WithBuilder) Error() string { return w.Err.Error() }

func (w WithBuilder) Unwrap() error { return w.Err }

// Detail will return an error that has explanation as detail attached to it.
func (w WithBuilder) Detail(detail string) WithBuilder {
	return WithBuilder{Err: withDetail{
		Err:    w.Err,
		Detail: detail,
	}}
}

// Detailf will return an error that has explanation as detail attached to it.
// Detailf formats according to a fmt format specifier and returns the resulting string.
func (w WithBuilder) Detailf(format string, a ...any) WithBuilder {
	return w.Detail(fmt.Sprintf(format, a...))
}

// Cause will attach the error that led to the current one.
// The message stays the one of the original error,
// but errors.Is and errors.As will find the cause as well.
func (w WithBuilder) Cause(cause error) WithBuilder {
	if cause == nil {
		return w
	}
	return WithBuilder{Err: withCause{
		Err:   w.Err,
		Cause: cause,
	}}
}

func LookupDetail(err error) (string, bool) {
	var detail withDetail
	if errors.As(err, &detail) {
		return detail.Detail, true
	}
	return "", false
}

// LookupCause returns the cause attached with WithBuilder.Cause.
func LookupCause(err error) (error, bool) {
	var wc withCause
	if errors.As(err, &wc) {
		return wc.Cause, true
	}
	return nil, false
}

type withDetail struct {
	Err    error
	Detail string
}

func (err withDetail) Error() string {
	return fmt.Sprintf("%s\n%s", err.Err.Error(), err.Detail)
}

func (err withDetail) Unwrap() error {
	return err.Err
}

type withCause struct {
	Err   error
	Cause error
}

func (err withCause) Error() string {
	return err.Err.Error()
}

func (err withCause) Unwrap() []error {
	return []error{err.Err, err.Cause}
}
