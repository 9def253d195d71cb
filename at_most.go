package validiter

// AtMost fails every valid element after the first n. The first n valid
// elements pass through unchanged; each later one is replaced with a
// [KindTooMany] failure carrying the element. Failures already in the
// sequence pass through without touching the count.
//
// AtMost never truncates: it keeps pulling until upstream ends, so the
// consumer still sees one outcome per upstream element.
func AtMost[T any](seq Seq[T], n int) Seq[T] {
	return func(yield func(VResult[T]) bool) {
		count := 0
		for res := range seq {
			if res.IsOk() {
				if count >= n {
					res = Fail(TooMany(res.Value()))
				} else {
					count++
				}
			}
			if !yield(res) {
				return
			}
		}
	}
}
