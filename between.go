package validiter

import "cmp"

// Between fails valid elements outside the inclusive range [low, high],
// replacing them with [KindOutOfBounds] failures. Values that do not order
// against the bounds at all (NaN floats) are out of bounds too. Failures
// already in the sequence pass through unchanged.
func Between[T cmp.Ordered](seq Seq[T], low, high T) Seq[T] {
	return func(yield func(VResult[T]) bool) {
		for res := range seq {
			if res.IsOk() {
				v := res.Value()
				if !(low <= v && v <= high) {
					res = Fail(OutOfBounds(v))
				}
			}
			if !yield(res) {
				return
			}
		}
	}
}
