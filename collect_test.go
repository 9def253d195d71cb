package validiter

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollectSuccess(t *testing.T) {
	out, err := Collect(Validate(slices.Values([]int{1, 2, 3})))
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, out)
}

func TestCollectStopsAtFirstFailure(t *testing.T) {
	pulled := 0
	src := func(yield func(int) bool) {
		for i := range 10 {
			pulled++
			if !yield(i) {
				return
			}
		}
	}

	out, err := Collect(AtMost(Validate(src), 3))
	require.Nil(t, out)

	var verr *ValidErr[int]
	require.ErrorAs(t, err, &verr)
	require.Equal(t, KindTooMany, verr.Kind)
	require.Equal(t, 3, verr.Value)
	require.Equal(t, 4, pulled, "nothing pulled past the first failure")
}

func TestCollectAllKeepsEveryOutcome(t *testing.T) {
	seq := Ensure(Validate(slices.Values([]int{0, 1, 2})), func(i int) bool { return i != 1 })
	require.Equal(t, []VResult[int]{
		Ok(0),
		Fail(Invalid(1)),
		Ok(2),
	}, CollectAll(seq))
}

func TestCollectAllEmpty(t *testing.T) {
	require.Empty(t, CollectAll(Validate(slices.Values([]int(nil)))))
}
