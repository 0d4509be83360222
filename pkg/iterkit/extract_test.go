package iterkit_test

import (
	"fmt"
	"math"
	"slices"
	"testing"

	"go.llib.dev/moreiter/pkg/errorkit"
	"go.llib.dev/moreiter/pkg/iterkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
)

func ExampleTake() {
	vs, err := iterkit.Take(iterkit.IntRange(1, 10), 3)
	if err != nil {
		panic(err)
	}
	fmt.Println(vs)
	// Output: [1 2 3]
}

func TestTake(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		src = let.Var(s, func(t *testcase.T) *counter {
			return finite(5)
		})
		n = let.VarOf(s, 3)
	)
	act := func(t *testcase.T) ([]int, error) {
		return iterkit.Take(src.Get(t).Seq(), n.Get(t))
	}

	s.When("n is less than the number of elements", func(s *testcase.Spec) {
		s.Then("the leading n elements are returned", func(t *testcase.T) {
			vs, err := act(t)
			assert.NoError(t, err)
			assert.Equal(t, []int{0, 1, 2}, vs)
		})

		s.Then("only n elements are pulled from the source", func(t *testcase.T) {
			_, err := act(t)
			assert.NoError(t, err)
			assert.Equal(t, 3, src.Get(t).pulled)
		})
	})

	s.When("n is more than the number of elements", func(s *testcase.Spec) {
		n.Let(s, func(t *testcase.T) int {
			return t.Random.IntB(6, 42)
		})

		s.Then("every element is returned", func(t *testcase.T) {
			vs, err := act(t)
			assert.NoError(t, err)
			assert.Equal(t, []int{0, 1, 2, 3, 4}, vs)
		})
	})

	s.When("n is zero", func(s *testcase.Spec) {
		n.LetValue(s, 0)

		s.Then("the source is not touched", func(t *testcase.T) {
			vs, err := act(t)
			assert.NoError(t, err)
			assert.Empty(t, vs)
			assert.Equal(t, 0, src.Get(t).pulled)
		})
	})

	s.When("n is negative", func(s *testcase.Spec) {
		n.Let(s, func(t *testcase.T) int {
			return t.Random.IntB(1, 42) * -1
		})

		s.Then("invalid argument is reported", func(t *testcase.T) {
			_, err := act(t)
			assert.ErrorIs(t, iterkit.ErrInvalidArgument, err)
		})
	})

	s.Test("infinite source", func(t *testcase.T) {
		c := infinite()
		vs, err := iterkit.Take(c.Seq(), 4)
		assert.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2, 3}, vs)
		assert.Equal(t, 4, c.pulled)
	})
}

func ExampleChunked() {
	chunks, err := iterkit.Chunked(iterkit.IntRange(1, 8), 3)
	if err != nil {
		panic(err)
	}
	for chunk, err := range chunks {
		if err != nil {
			panic(err)
		}
		fmt.Println(chunk)
	}
	// Output:
	// [1 2 3]
	// [4 5 6]
	// [7 8]
}

func TestChunked(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		values = let.Var(s, func(t *testcase.T) []int {
			return random.Slice(t.Random.IntB(1, 50), t.Random.Int)
		})
		n = let.Var(s, func(t *testcase.T) int {
			return t.Random.IntB(1, 10)
		})
		opts = testcase.LetValue[[]iterkit.ChunkOption](s, nil)
	)
	act := func(t *testcase.T) (iterkit.SeqE[[]int], error) {
		return iterkit.Chunked(iterkit.Slice(values.Get(t)), n.Get(t), opts.Get(t)...)
	}

	s.Then("the concatenation of the chunks reconstructs the source", func(t *testcase.T) {
		chunks, err := act(t)
		assert.NoError(t, err)
		var got []int
		for chunk, err := range chunks {
			assert.NoError(t, err)
			assert.NotEmpty(t, chunk)
			assert.True(t, len(chunk) <= n.Get(t))
			got = append(got, chunk...)
		}
		assert.Equal(t, values.Get(t), got)
	})

	s.Then("every chunk except the last one is full", func(t *testcase.T) {
		chunks, err := act(t)
		assert.NoError(t, err)
		vs, err := iterkit.CollectE(chunks)
		assert.NoError(t, err)
		for _, chunk := range vs[:len(vs)-1] {
			assert.Equal(t, n.Get(t), len(chunk))
		}
	})

	s.When("strict chunking is requested", func(s *testcase.Spec) {
		opts.Let(s, func(t *testcase.T) []iterkit.ChunkOption {
			return []iterkit.ChunkOption{iterkit.Strict()}
		})

		s.And("the source length is divisible by n", func(s *testcase.Spec) {
			values.Let(s, func(t *testcase.T) []int {
				return random.Slice(n.Get(t)*t.Random.IntB(1, 5), t.Random.Int)
			})

			s.Then("every chunk is full", func(t *testcase.T) {
				chunks, err := act(t)
				assert.NoError(t, err)
				vs, err := iterkit.CollectE(chunks)
				assert.NoError(t, err)
				assert.Equal(t, len(values.Get(t))/n.Get(t), len(vs))
				assert.Equal(t, values.Get(t), slices.Concat(vs...))
			})
		})

		s.And("the source length is not divisible by n", func(s *testcase.Spec) {
			n.Let(s, func(t *testcase.T) int {
				return t.Random.IntB(2, 10)
			})
			values.Let(s, func(t *testcase.T) []int {
				length := n.Get(t)*t.Random.IntB(0, 5) + t.Random.IntB(1, n.Get(t)-1)
				return random.Slice(length, t.Random.Int)
			})

			s.Then("the full chunks are yielded before uneven chunking is reported", func(t *testcase.T) {
				chunks, err := act(t)
				assert.NoError(t, err)
				vs, err := iterkit.CollectE(chunks)
				assert.ErrorIs(t, iterkit.ErrUnevenChunking, err)
				assert.Equal(t, len(values.Get(t))/n.Get(t), len(vs))
			})
		})

		s.And("n is unbounded", func(s *testcase.Spec) {
			n.LetValue(s, iterkit.Unbounded)

			s.Then("it fails immediately", func(t *testcase.T) {
				_, err := act(t)
				assert.ErrorIs(t, iterkit.ErrStrictRequiresSize, err)
				assert.ErrorIs(t, iterkit.ErrInvalidArgument, err)
			})
		})
	})

	s.When("n is unbounded", func(s *testcase.Spec) {
		n.LetValue(s, iterkit.Unbounded)

		s.Then("a single chunk holds everything", func(t *testcase.T) {
			chunks, err := act(t)
			assert.NoError(t, err)
			vs, err := iterkit.CollectE(chunks)
			assert.NoError(t, err)
			assert.Equal(t, [][]int{values.Get(t)}, vs)
		})

		s.And("the source is empty", func(s *testcase.Spec) {
			values.Let(s, func(t *testcase.T) []int { return nil })

			s.Then("there are no chunks", func(t *testcase.T) {
				chunks, err := act(t)
				assert.NoError(t, err)
				vs, err := iterkit.CollectE(chunks)
				assert.NoError(t, err)
				assert.Empty(t, vs)
			})
		})
	})

	s.When("n is an invalid size", func(s *testcase.Spec) {
		n.Let(s, func(t *testcase.T) int {
			return t.Random.IntB(2, 42) * -1
		})

		s.Then("it fails immediately", func(t *testcase.T) {
			_, err := act(t)
			assert.ErrorIs(t, iterkit.ErrInvalidSize, err)
			assert.ErrorIs(t, iterkit.ErrInvalidArgument, err)
		})
	})

	s.Test("infinite source is chunked lazily", func(t *testcase.T) {
		c := infinite()
		chunks, err := iterkit.Chunked(c.Seq(), 2)
		assert.NoError(t, err)
		var got [][]int
		for chunk, err := range chunks {
			assert.NoError(t, err)
			got = append(got, chunk)
			if len(got) == 2 {
				break
			}
		}
		assert.Equal(t, [][]int{{0, 1}, {2, 3}}, got)
		assert.Equal(t, 4, c.pulled)
	})
}

func TestFirst(t *testing.T) {
	t.Run("smoke", func(t *testing.T) {
		v, err := iterkit.First(iterkit.IntRange(7, 42))
		assert.NoError(t, err)
		assert.Equal(t, 7, v)
	})
	t.Run("only one element is pulled", func(t *testing.T) {
		c := infinite()
		_, err := iterkit.First(c.Seq())
		assert.NoError(t, err)
		assert.Equal(t, 1, c.pulled)
	})
	t.Run("empty", func(t *testing.T) {
		_, err := iterkit.First(iterkit.Empty[int]())
		assert.ErrorIs(t, err, iterkit.ErrEmptyIterable)
		assert.ErrorIs(t, err, iterkit.ErrExhausted)
		cause, ok := errorkit.LookupCause(err)
		assert.True(t, ok)
		assert.Equal[error](t, iterkit.ErrExhausted, cause)
	})
	t.Run("default", func(t *testing.T) {
		assert.Equal(t, 42, iterkit.FirstOr(iterkit.Empty[int](), 42))
		assert.Equal(t, 1, iterkit.FirstOr(iterkit.IntRange(1, 3), 42))
	})
}

func ExampleLast() {
	v, err := iterkit.Last[int](iterkit.List[int]{1, 2, 3})
	if err != nil {
		panic(err)
	}
	fmt.Println(v)
	// Output: 3
}

func TestLast(t *testing.T) {
	s := testcase.NewSpec(t)

	values := let.Var(s, func(t *testcase.T) []int {
		return random.Slice(t.Random.IntB(1, 42), t.Random.Int)
	})

	s.Test("every access strategy agrees", func(t *testcase.T) {
		exp := values.Get(t)[len(values.Get(t))-1]

		seq := &indexOnly{values: values.Get(t)}
		got, err := iterkit.Last[int](seq)
		assert.NoError(t, err)
		assert.Equal(t, exp, got)
		assert.False(t, seq.iterated, "a sequence should be accessed by index")

		got, err = iterkit.Last[int](backwardOnly(values.Get(t)))
		assert.NoError(t, err)
		assert.Equal(t, exp, got)

		got, err = iterkit.Last[int](iterkit.Seq[int](iterkit.Slice(values.Get(t))))
		assert.NoError(t, err)
		assert.Equal(t, exp, got)

		got, err = iterkit.Last[int](iterkit.List[int](values.Get(t)))
		assert.NoError(t, err)
		assert.Equal(t, exp, got)
	})

	s.Test("empty", func(t *testcase.T) {
		for _, src := range []iterkit.Iterable[int]{
			&indexOnly{},
			backwardOnly{},
			iterkit.Seq[int](iterkit.Empty[int]()),
			iterkit.List[int]{},
			nil,
		} {
			_, err := iterkit.Last[int](src)
			assert.ErrorIs(t, iterkit.ErrEmptyIterable, err)
			assert.ErrorIs(t, iterkit.ErrExhausted, err)
			assert.Equal(t, 42, iterkit.LastOr[int](src, 42))
		}
	})

	s.Test("default is ignored when there is a value", func(t *testcase.T) {
		assert.Equal(t, 3, iterkit.LastOr[int](iterkit.List[int]{1, 2, 3}, 42))
	})
}

func TestNthOrLast(t *testing.T) {
	var src iterkit.Iterable[int] = iterkit.Seq[int](iterkit.IntRange(0, 9))

	t.Run("in range", func(t *testing.T) {
		v, err := iterkit.NthOrLast[int](src, 3)
		assert.NoError(t, err)
		assert.Equal(t, 3, v)
	})
	t.Run("out of range", func(t *testing.T) {
		v, err := iterkit.NthOrLast[int](src, 20)
		assert.NoError(t, err)
		assert.Equal(t, 9, v)
	})
	t.Run("only n+1 elements are pulled", func(t *testing.T) {
		c := infinite()
		v, err := iterkit.NthOrLast[int](iterkit.Seq[int](c.Seq()), 5)
		assert.NoError(t, err)
		assert.Equal(t, 5, v)
		assert.Equal(t, 6, c.pulled)
	})
	t.Run("empty", func(t *testing.T) {
		empty := iterkit.Seq[int](iterkit.Empty[int]())
		_, err := iterkit.NthOrLast[int](empty, 3)
		assert.ErrorIs(t, err, iterkit.ErrEmptyIterable)
		assert.Equal(t, 42, iterkit.NthOrLastOr[int](empty, 3, 42))
	})
	t.Run("the largest index", func(t *testing.T) {
		v, err := iterkit.NthOrLast[int](iterkit.Seq[int](iterkit.IntRange(1, 3)), math.MaxInt)
		assert.NoError(t, err)
		assert.Equal(t, 3, v)
		assert.Equal(t, 3, iterkit.NthOrLastOr[int](iterkit.Seq[int](iterkit.IntRange(1, 3)), math.MaxInt, 42))
	})
	t.Run("negative", func(t *testing.T) {
		_, err := iterkit.NthOrLast[int](src, -1)
		assert.ErrorIs(t, err, iterkit.ErrInvalidArgument)
	})
}

func TestTake_length(t *testing.T) {
	rnd := random.New(random.CryptoSeed{})
	vs := random.Slice(rnd.IntB(1, 20), rnd.Int)
	n := rnd.IntB(1, 30)
	got, err := iterkit.Take(iterkit.Slice(vs), n)
	assert.NoError(t, err)
	assert.Equal(t, min(n, len(vs)), len(got))
	assert.Equal(t, vs[:len(got)], got)
}
