package validiter

// AtLeast fails the sequence if it ends with fewer than n valid elements.
// Every element passes through unchanged; when upstream is exhausted and
// fewer than n valid elements were seen, exactly one extra [KindTooFew]
// failure carrying the valid-element count is appended before the sequence
// ends. Failures already in the sequence pass through and do not count
// toward n.
//
// AtLeast is the only adapter that produces an outcome not sourced from an
// upstream element, and it only does so at exhaustion: a consumer that
// stops ranging before upstream ends never sees the synthetic failure.
func AtLeast[T any](seq Seq[T], n int) Seq[T] {
	return func(yield func(VResult[T]) bool) {
		count := 0
		for res := range seq {
			if res.IsOk() {
				count++
			}
			if !yield(res) {
				return
			}
		}
		if count < n {
			yield(Fail(TooFew[T](count)))
		}
	}
}
