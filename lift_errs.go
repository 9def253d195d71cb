package validiter

import "iter"

// LiftErrs turns a sequence that already distinguishes success from failure
// with its own error vocabulary into a validatable one. Pairs with a nil
// error become [Ok] elements; pairs with a non-nil error become
// [KindLifted] failures wrapping the foreign error, so the original cause
// stays reachable through [errors.As] while validation adapters can resume
// over the sequence.
//
// LiftErrs is deliberately a separate entry point from [Validate]: a plain
// value and an already-judged value are different inputs, and collapsing
// them into one constructor would hide which interpretation applies.
func LiftErrs[T any](src iter.Seq2[T, error]) Seq[T] {
	return func(yield func(VResult[T]) bool) {
		for v, err := range src {
			var res VResult[T]
			if err != nil {
				res = Fail(Lifted[T](err))
			} else {
				res = Ok(v)
			}
			if !yield(res) {
				return
			}
		}
	}
}

// TryMap applies a fallible transform to each element of a plain sequence
// and rebases the transform's errors in one step, the usual front of a
// parse-then-validate pipeline:
//
//	floats := validiter.TryMap(fields, func(s string) (float64, error) {
//		return strconv.ParseFloat(strings.TrimSpace(s), 64)
//	})
func TryMap[T, U any](src iter.Seq[T], f func(T) (U, error)) Seq[U] {
	return func(yield func(VResult[U]) bool) {
		for v := range src {
			u, err := f(v)
			var res VResult[U]
			if err != nil {
				res = Fail(Lifted[U](err))
			} else {
				res = Ok(u)
			}
			if !yield(res) {
				return
			}
		}
	}
}
