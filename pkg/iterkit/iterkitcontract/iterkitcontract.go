// Package iterkitcontract holds the contracts that iterkit protocol implementations must satisfy.
package iterkitcontract

import (
	"iter"
	"slices"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/moreiter/pkg/iterkit"
	"go.llib.dev/moreiter/port/contract"
)

func IterSeq[T any](mk func(testing.TB) iter.Seq[T]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) iter.Seq[T] {
		return mk(t)
	})

	s.Then("values can be collected from the iterator", func(t *testcase.T) {
		var vs []T
		for v := range subject.Get(t) {
			vs = append(vs, v)
		}
		assert.NotEmpty(t, vs)
	})

	s.Then("the iteration can be stopped early", func(t *testcase.T) {
		var n int
		for range subject.Get(t) {
			n++
			break
		}
		assert.Equal(t, 1, n)
	})

	return s.AsSuite("iterator")
}

// SequenceSubject is a Sequence along with the elements it is expected to hold.
type SequenceSubject[T any] struct {
	Sequence iterkit.Sequence[T]
	Values   []T
}

// Sequence checks that the length, the indexed access and the iteration of a Sequence agree with each other.
func Sequence[T any](mk func(testing.TB) SequenceSubject[T]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) SequenceSubject[T] {
		return mk(t)
	})

	s.Then("the length matches the number of elements", func(t *testcase.T) {
		assert.Equal(t, len(subject.Get(t).Values), subject.Get(t).Sequence.Len())
	})

	s.Then("every element is accessible by its index", func(t *testcase.T) {
		seq := subject.Get(t).Sequence
		for i, exp := range subject.Get(t).Values {
			assert.Equal(t, exp, seq.At(i))
		}
	})

	s.Then("negative indices count from the end", func(t *testcase.T) {
		seq := subject.Get(t).Sequence
		values := subject.Get(t).Values
		for i := 1; i <= len(values); i++ {
			assert.Equal(t, values[len(values)-i], seq.At(-i))
		}
	})

	s.Then("the iteration yields the elements in order", func(t *testcase.T) {
		assert.Equal(t, subject.Get(t).Values, iterkit.Collect(subject.Get(t).Sequence.All()))
	})

	s.Then("the last element agrees with the indexed access", func(t *testcase.T) {
		values := subject.Get(t).Values
		got, err := iterkit.Last[T](subject.Get(t).Sequence)
		if len(values) == 0 {
			assert.ErrorIs(t, err, iterkit.ErrEmptyIterable)
			return
		}
		assert.NoError(t, err)
		assert.Equal(t, values[len(values)-1], got)
	})

	s.Then("it can be reversed", func(t *testcase.T) {
		exp := slices.Clone(subject.Get(t).Values)
		slices.Reverse(exp)
		assert.Equal(t, exp, iterkit.Collect(iterkit.AlwaysReversible[T](subject.Get(t).Sequence)))
	})

	return s.AsSuite("sequence")
}
