package iterkit

import "io"

// PullIter is a cursor over a stream of values.
// It is the pull-based counterpart of iter.Seq,
// used where the consumer drives the iteration one step at a time.
type PullIter[V any] interface {
	// Next advances the cursor, and reports whether Value holds a new element.
	// Once Next returns false, Err tells whether the stream ended with a failure.
	Next() bool
	// Value returns the element the cursor currently points at.
	Value() V
	// Close releases what the cursor holds.
	// A cursor without resources returns nil.
	io.Closer
	Err() error
}

// FromPullIter turns a PullIter into a failable iterator.
// The PullIter is closed when the iteration ends.
func FromPullIter[T any](itr PullIter[T]) SeqE[T] {
	return func(yield func(T, error) bool) {
		defer itr.Close()
		for itr.Next() {
			if !yield(itr.Value(), nil) {
				return
			}
		}
		var zero T
		if err := itr.Err(); err != nil {
			if !yield(zero, err) {
				return
			}
		}
		if err := itr.Close(); err != nil {
			yield(zero, err)
		}
	}
}
