package vrule

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/Yehuda-blip/validiter"
)

// Checked applies ozzo-validation rules to every valid element of the
// sequence. An element rejected by any rule becomes a
// [validiter.KindInvalid] failure whose Cause is the rule's error, so the
// rule's own message stays reachable through [errors.As]. Rules are
// evaluated in order and stop at the first rejection. Failures already in
// the sequence pass through unchecked.
func Checked[T any](seq validiter.Seq[T], rules ...validation.Rule) validiter.Seq[T] {
	return func(yield func(validiter.VResult[T]) bool) {
		for res := range seq {
			if res.IsOk() {
				if err := validation.Validate(res.Value(), rules...); err != nil {
					ve := validiter.Invalid(res.Value())
					ve.Cause = err
					res = validiter.Fail(ve)
				}
			}
			if !yield(res) {
				return
			}
		}
	}
}
