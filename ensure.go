package validiter

// Ensure applies a boolean test to every valid element, replacing elements
// that fail it with [KindInvalid] failures. It is the general-purpose
// validation: any check expressible as a predicate fits here.
//
// pred is called at most once per valid element and never for failures
// already in the sequence. It must not mutate the element or depend on
// call order.
func Ensure[T any](seq Seq[T], pred func(T) bool) Seq[T] {
	return func(yield func(VResult[T]) bool) {
		for res := range seq {
			if res.IsOk() && !pred(res.Value()) {
				res = Fail(Invalid(res.Value()))
			}
			if !yield(res) {
				return
			}
		}
	}
}
