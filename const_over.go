package validiter

// ConstOver fails valid elements whose derived key differs from the key of
// the first valid element. key is applied to each valid element; the first
// result establishes the expected key for the rest of the sequence, and a
// later element with a different key becomes a [KindBrokenConstant]
// failure carrying both the observed and the established key.
//
// The established key never changes, so after a mismatch the sequence is
// still judged against the original key: keys [2, 2, 3, 2] fail only the
// third element. Failures already in the sequence pass through with their
// keys never derived.
func ConstOver[T any, K comparable](seq Seq[T], key func(T) K) Seq[T] {
	return func(yield func(VResult[T]) bool) {
		var expected K
		established := false
		for res := range seq {
			if res.IsOk() {
				observed := key(res.Value())
				switch {
				case !established:
					expected = observed
					established = true
				case observed != expected:
					res = Fail(BrokenConstant(res.Value(), observed, expected))
				}
			}
			if !yield(res) {
				return
			}
		}
	}
}
