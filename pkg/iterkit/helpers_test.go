package iterkit_test

import (
	"iter"

	"go.llib.dev/moreiter/pkg/iterkit"
)

// counter is a single-use source that remembers how many elements were pulled from it.
type counter struct {
	n      int
	limit  int
	pulled int
}

func (c *counter) next() (int, bool) {
	if 0 <= c.limit && c.limit <= c.n {
		return 0, false
	}
	c.pulled++
	c.n++
	return c.n - 1, true
}

// Seq yields 0, 1, 2... until the limit, or endlessly when the limit is negative.
func (c *counter) Seq() iter.Seq[int] {
	return func(yield func(int) bool) {
		for {
			v, ok := c.next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

func infinite() *counter { return &counter{limit: -1} }

func finite(n int) *counter { return &counter{limit: n} }

// indexOnly is a Sequence without Backward, and it records if it was iterated.
type indexOnly struct {
	values   []int
	iterated bool
}

func (s *indexOnly) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		s.iterated = true
		for _, v := range s.values {
			if !yield(v) {
				return
			}
		}
	}
}

func (s *indexOnly) Len() int { return len(s.values) }

func (s *indexOnly) At(i int) int { return iterkit.List[int](s.values).At(i) }

// backwardOnly is a Reversible without indexed access.
type backwardOnly []int

func (b backwardOnly) All() iter.Seq[int] { return iterkit.List[int](b).All() }

func (b backwardOnly) Backward() iter.Seq[int] { return iterkit.List[int](b).Backward() }

// color and blob are text types defined over string and []byte.
type (
	color string
	blob  []byte
)

// lazyBox is an Iterable that reads its receiver, so it can't be iterated through a nil pointer.
type lazyBox struct{ values []int }

func (b *lazyBox) All() iter.Seq[int] { return iterkit.Slice(b.values) }
