package validiter

// LookBack checks every valid element against a value derived from the
// valid element steps positions before it. extract derives the stored
// value; check receives the current element and the derived value from
// steps valid elements back, and a false result replaces the element with
// a [KindLookBackFailed] failure carrying the value it was checked
// against.
//
// The first steps valid elements only warm the window up and always pass.
// A rejected element does not enter the window, so later elements are
// still checked against the accepted history. steps == 0 disables the
// check entirely. Failures already in the sequence pass through and never
// enter the window.
//
// LookBack generalizes [ConstOver]: ConstOver is a look-back of one over
// an immovable first key. Use it for checks like "each value exceeds the
// one n samples ago" on periodic data.
func LookBack[T, A any](seq Seq[T], steps int, extract func(T) A, check func(v T, against A) bool) Seq[T] {
	return func(yield func(VResult[T]) bool) {
		if steps <= 0 {
			for res := range seq {
				if !yield(res) {
					return
				}
			}
			return
		}
		window := make([]A, 0, steps)
		pos := 0
		for res := range seq {
			if res.IsOk() {
				v := res.Value()
				if pos < steps {
					window = append(window, extract(v))
					pos++
				} else {
					i := pos % steps
					against := window[i]
					if check(v, against) {
						window[i] = extract(v)
						pos++
					} else {
						res = Fail(LookBackFailed(v, against))
					}
				}
			}
			if !yield(res) {
				return
			}
		}
	}
}
