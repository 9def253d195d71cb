package vrule

import (
	"fmt"

	"github.com/asaskevich/govalidator"

	"github.com/Yehuda-blip/validiter"
)

// Format checks every valid string element against a named govalidator
// format ("email", "ipv4", "numeric", "uuid", ...). Elements that do not
// match become [validiter.KindInvalid] failures; failures already in the
// sequence pass through unchecked.
//
// The format name is resolved against [govalidator.TagMap] once, when the
// adapter is constructed; an unknown name panics, like a malformed pattern
// in [regexp.MustCompile].
func Format[T ~string](seq validiter.Seq[T], name string) validiter.Seq[T] {
	check, ok := govalidator.TagMap[name]
	if !ok {
		panic(fmt.Sprintf("vrule: unknown govalidator format %q", name))
	}
	return func(yield func(validiter.VResult[T]) bool) {
		for res := range seq {
			if res.IsOk() && !check(string(res.Value())) {
				res = validiter.Fail(validiter.Invalid(res.Value()))
			}
			if !yield(res) {
				return
			}
		}
	}
}
