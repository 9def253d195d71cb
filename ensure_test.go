package validiter

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsure(t *testing.T) {
	even := func(i int) bool { return i%2 == 0 }
	results := CollectAll(Ensure(Validate(slices.Values([]int{0, 1, 2, 3})), even))
	require.Equal(t, []VResult[int]{
		Ok(0),
		Fail(Invalid(1)),
		Ok(2),
		Fail(Invalid(3)),
	}, results)
}

func TestEnsureChaining(t *testing.T) {
	seq := Validate(slices.Values([]int{0, 1, 2, 3}))
	seq = Ensure(seq, func(i int) bool { return i%2 == 0 })
	seq = Ensure(seq, func(i int) bool { return i > 0 })

	results := CollectAll(seq)
	require.False(t, results[0].IsOk(), "0 fails the second check")
	require.False(t, results[1].IsOk(), "1 fails the first check")
	require.True(t, results[2].IsOk())
	require.False(t, results[3].IsOk())
}

func TestEnsureEvaluatesPredicateOncePerValidElement(t *testing.T) {
	calls := 0
	pred := func(int) bool {
		calls++
		return calls != 2 // second valid element fails
	}

	seq := Ensure(Validate(slices.Values([]int{10, 20, 30})), pred)
	seq = Ensure(seq, func(int) bool { return true })

	results := CollectAll(seq)
	require.Equal(t, 3, calls, "exactly one evaluation per valid element")
	require.True(t, results[0].IsOk())
	require.Equal(t, Fail(Invalid(20)), results[1])
	require.True(t, results[2].IsOk())
}

func TestEnsureIgnoresUpstreamFailures(t *testing.T) {
	upstream := []VResult[int]{Fail(TooMany(5)), Ok(6)}

	calls := 0
	results := CollectAll(Ensure(slices.Values(upstream), func(int) bool {
		calls++
		return true
	}))
	require.Equal(t, 1, calls, "predicate never runs on failures")
	require.Equal(t, upstream, results)
}
