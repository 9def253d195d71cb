package validiter

import (
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Adapter order decides classification: when two adapters would both
// reject the same element, the one closer to the source wins.
func TestChainingOrderDecidesClassification(t *testing.T) {
	input := []int{3, 4, 5, 9}

	betweenFirst := AtMost(Between(Validate(slices.Values(input)), 2, 8), 3)
	results := CollectAll(betweenFirst)
	require.Equal(t, []VResult[int]{
		Ok(3), Ok(4), Ok(5),
		Fail(OutOfBounds(9)),
	}, results, "Between sees 9 first and AtMost forwards the failure uncounted")

	atMostFirst := Between(AtMost(Validate(slices.Values(input)), 3), 2, 8)
	results = CollectAll(atMostFirst)
	require.Equal(t, []VResult[int]{
		Ok(3), Ok(4), Ok(5),
		Fail(TooMany(9)),
	}, results, "AtMost sees the fourth valid element first")
}

func TestChainedAdapters(t *testing.T) {
	seq := Validate(slices.Values(ints(0, 10)))
	seq = Between(seq, 2, 8)
	seq = Ensure(seq, func(i int) bool { return i%2 == 0 })
	seq = AtLeast(seq, 6)

	require.Equal(t, []VResult[int]{
		Fail(OutOfBounds(0)),
		Fail(OutOfBounds(1)),
		Ok(2),
		Fail(Invalid(3)),
		Ok(4),
		Fail(Invalid(5)),
		Ok(6),
		Fail(Invalid(7)),
		Ok(8),
		Fail(OutOfBounds(9)),
		Fail(TooFew[int](4)),
	}, CollectAll(seq))
}

// collectMatrix parses a comma-separated numeric grid, validating each row
// (non-empty, non-negative values) and the grid as a whole (non-empty,
// rectangular).
func collectMatrix(csv string) ([][]float64, error) {
	parseRow := func(line string) ([]float64, error) {
		row := TryMap(slices.Values(strings.Split(line, ",")), func(field string) (float64, error) {
			return strconv.ParseFloat(strings.TrimSpace(field), 64)
		})
		row = AtLeast(row, 1)
		row = Ensure(row, func(v float64) bool { return v >= 0 })
		return Collect(row)
	}

	rows := func(yield func([]float64, error) bool) {
		for _, line := range strings.Split(csv, "\n") {
			if !yield(parseRow(line)) {
				return
			}
		}
	}

	matrix := LiftErrs(rows)
	matrix = AtLeast(matrix, 1)
	matrix = ConstOver(matrix, func(row []float64) int { return len(row) })
	return Collect(matrix)
}

func TestMatrixPipeline(t *testing.T) {
	mat, err := collectMatrix("1.2, 3.0\n4.2, 0.5")
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1.2, 3.0}, {4.2, 0.5}}, mat)
}

func TestMatrixPipelineRaggedRows(t *testing.T) {
	_, err := collectMatrix("1.0\n2.0, 3.0")

	var verr *ValidErr[[]float64]
	require.ErrorAs(t, err, &verr)
	require.Equal(t, KindBrokenConstant, verr.Kind)
	require.Equal(t, []float64{2.0, 3.0}, verr.Value, "failure names the second row")
	require.Equal(t, 2, verr.Observed)
	require.Equal(t, 1, verr.Expected)
}

func TestMatrixPipelineFailures(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		kind ErrKind
	}{
		{name: "negative value", csv: "1.2, -3.0", kind: KindLifted},
		{name: "unparsable field", csv: "1.2, zap", kind: KindLifted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := collectMatrix(tt.csv)
			var verr *ValidErr[[]float64]
			require.ErrorAs(t, err, &verr)
			require.Equal(t, tt.kind, verr.Kind)
		})
	}
}
