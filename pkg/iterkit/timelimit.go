package iterkit

import (
	"context"
	"iter"
	"time"

	"go.llib.dev/moreiter/pkg/logger"
	"go.llib.dev/testcase/clock"
)

// TimeLimited is a PullIter that stops yielding once the time limit has elapsed.
//
// The elapsed time is measured from the moment TimeLimit was called,
// and checked after each element is pulled from the source,
// so an element that arrives after the deadline is discarded.
// A zero limit never touches the source.
type TimeLimited[T any] struct {
	Limit time.Duration

	next     func() (T, bool)
	stop     func()
	start    time.Time
	value    T
	done     bool
	timedOut bool
}

// TimeLimit wraps the iterator into a TimeLimited.
// Close must be called when the iteration is abandoned before it ends.
func TimeLimit[T any](i iter.Seq[T], limit time.Duration) (*TimeLimited[T], error) {
	if limit < 0 {
		return nil, invalidArgument("time limit must be non-negative, got %s", limit)
	}
	if i == nil {
		i = Empty[T]()
	}
	next, stop := iter.Pull(i)
	return &TimeLimited[T]{
		Limit: limit,
		next:  next,
		stop:  stop,
		start: clock.Now(),
	}, nil
}

func (tl *TimeLimited[T]) Next() bool {
	if tl.done {
		return false
	}
	if tl.Limit == 0 {
		tl.expire()
		return false
	}
	v, ok := tl.next()
	if !ok {
		tl.finish()
		return false
	}
	if tl.Limit < clock.Now().Sub(tl.start) {
		tl.expire()
		return false
	}
	tl.value = v
	return true
}

func (tl *TimeLimited[T]) Value() T {
	return tl.value
}

func (tl *TimeLimited[T]) Err() error {
	return nil
}

func (tl *TimeLimited[T]) Close() error {
	tl.finish()
	return nil
}

// TimedOut reports whether the iteration was ended by the time limit.
func (tl *TimeLimited[T]) TimedOut() bool {
	return tl.timedOut
}

// All returns the remaining elements as an iterator.
// Since the source is shared, it can be iterated only once.
// Breaking out of the loop closes the TimeLimited.
func (tl *TimeLimited[T]) All() SingleUseSeq[T] {
	return func(yield func(T) bool) {
		for v, err := range FromPullIter[T](tl) {
			if err != nil || !yield(v) {
				return
			}
		}
	}
}

func (tl *TimeLimited[T]) expire() {
	tl.timedOut = true
	tl.finish()
	logger.Debug(context.Background(), "time limited iteration reached its deadline",
		logger.Field("limit", tl.Limit.String()))
}

func (tl *TimeLimited[T]) finish() {
	if tl.done {
		return
	}
	tl.done = true
	var zero T
	tl.value = zero
	tl.stop()
}
