package validiter

import "iter"

// Seq is a lazy sequence of validation outcomes over T. It is an alias for
// [iter.Seq] of [VResult], so a Seq ranges with a plain for loop and works
// with the standard sequence helpers ([slices.Collect] and friends).
//
// Adapters in this package take a Seq and return a new Seq wrapping it.
// Nothing is evaluated until the outermost Seq is ranged over, and each
// upstream element is pulled exactly once per element produced. Breaking
// out of the range loop stops the whole chain; no adapter pulls ahead.
//
// Every range over a Seq starts the pipeline from scratch with fresh
// adapter state, provided the underlying source sequence is itself
// re-rangeable.
type Seq[T any] = iter.Seq[VResult[T]]

// Validate turns a plain sequence into a validatable one by wrapping every
// element with [Ok]. It is the entry point for fresh pipelines:
//
//	seq := validiter.Validate(slices.Values(data))
//	seq = validiter.AtMost(seq, 10)
//	seq = validiter.Ensure(seq, func(v int) bool { return v >= 0 })
func Validate[T any](src iter.Seq[T]) Seq[T] {
	return func(yield func(VResult[T]) bool) {
		for v := range src {
			if !yield(Ok(v)) {
				return
			}
		}
	}
}
