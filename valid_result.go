package validiter

import "fmt"

// ErrKind identifies which validation a failed element violated. The set is
// closed: adapters in this package only ever produce these kinds, and
// downstream code can switch on the kind without worrying about unknown
// values appearing later in a pipeline.
type ErrKind int

const (
	// KindTooMany marks an element that arrived after the [AtMost] limit
	// was already reached.
	KindTooMany ErrKind = iota
	// KindTooFew marks the synthetic terminal failure emitted by [AtLeast]
	// when the sequence ended short.
	KindTooFew
	// KindOutOfBounds marks an element rejected by [Between].
	KindOutOfBounds
	// KindInvalid marks an element rejected by a caller-supplied check
	// ([Ensure] and the vrule bridges).
	KindInvalid
	// KindLifted marks a failure rebased from a foreign error by
	// [LiftErrs] or [TryMap].
	KindLifted
	// KindBrokenConstant marks an element whose derived key differs from
	// the key established by [ConstOver].
	KindBrokenConstant
	// KindLookBackFailed marks an element rejected by [LookBack].
	KindLookBackFailed
)

func (k ErrKind) String() string {
	switch k {
	case KindTooMany:
		return "too many"
	case KindTooFew:
		return "too few"
	case KindOutOfBounds:
		return "out of bounds"
	case KindInvalid:
		return "invalid"
	case KindLifted:
		return "lifted"
	case KindBrokenConstant:
		return "broken constant"
	case KindLookBackFailed:
		return "look back failed"
	}
	return fmt.Sprintf("ErrKind(%d)", int(k))
}

// ValidErr describes a single validation failure. Only the fields relevant
// to the Kind are set; the rest stay at their zero values. A ValidErr is
// produced once by the adapter that detected the failure and is forwarded
// verbatim by every adapter after it.
type ValidErr[T any] struct {
	Kind ErrKind

	// Value is the element the failure is about. Unset for KindTooFew,
	// which is synthesized at end of sequence, and for KindLifted, where
	// the foreign stage produced no value.
	Value T

	// Count is the number of valid elements seen before exhaustion.
	// KindTooFew only.
	Count int

	// Observed and Expected are the derived keys involved in a
	// KindBrokenConstant failure: Observed is this element's key,
	// Expected the key established by the first valid element.
	Observed any
	Expected any

	// Against is the derived value this element was checked against in a
	// KindLookBackFailed failure.
	Against any

	// Cause is the foreign error a KindLifted failure was rebased from,
	// or the rule error behind a vrule KindInvalid failure.
	Cause error
}

func (e *ValidErr[T]) Error() string {
	switch e.Kind {
	case KindTooFew:
		return fmt.Sprintf("too few: sequence ended after %d valid element(s)", e.Count)
	case KindLifted:
		if e.Cause != nil {
			return "lifted: " + e.Cause.Error()
		}
		return "lifted"
	case KindBrokenConstant:
		return fmt.Sprintf("broken constant: %v has key %v, expected %v", e.Value, e.Observed, e.Expected)
	case KindLookBackFailed:
		return fmt.Sprintf("look back failed: %v checked against %v", e.Value, e.Against)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v: %v", e.Kind, e.Value, e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Value)
}

// Unwrap exposes the foreign error behind a rebased failure to
// [errors.Is] and [errors.As]. Returns nil for failures produced by the
// adapters themselves.
func (e *ValidErr[T]) Unwrap() error {
	return e.Cause
}

// TooMany builds the failure for an element past the [AtMost] limit.
func TooMany[T any](v T) *ValidErr[T] {
	return &ValidErr[T]{Kind: KindTooMany, Value: v}
}

// TooFew builds the terminal failure [AtLeast] synthesizes, carrying the
// number of valid elements seen before the sequence ended.
func TooFew[T any](count int) *ValidErr[T] {
	return &ValidErr[T]{Kind: KindTooFew, Count: count}
}

// OutOfBounds builds the failure for an element outside a [Between] range.
func OutOfBounds[T any](v T) *ValidErr[T] {
	return &ValidErr[T]{Kind: KindOutOfBounds, Value: v}
}

// Invalid builds the failure for an element rejected by a caller-supplied
// check.
func Invalid[T any](v T) *ValidErr[T] {
	return &ValidErr[T]{Kind: KindInvalid, Value: v}
}

// Lifted builds the failure a foreign error is rebased into. cause may be
// nil when the foreign stage distinguishes failure without an error value.
func Lifted[T any](cause error) *ValidErr[T] {
	return &ValidErr[T]{Kind: KindLifted, Cause: cause}
}

// BrokenConstant builds the failure for an element whose derived key
// differs from the established one.
func BrokenConstant[T any](v T, observed, expected any) *ValidErr[T] {
	return &ValidErr[T]{Kind: KindBrokenConstant, Value: v, Observed: observed, Expected: expected}
}

// LookBackFailed builds the failure for an element rejected against the
// derived value a fixed number of steps back.
func LookBackFailed[T any](v T, against any) *ValidErr[T] {
	return &ValidErr[T]{Kind: KindLookBackFailed, Value: v, Against: against}
}

// VResult is a single element of a validated sequence: either a value of T
// or a validation failure. It is immutable; adapters never modify a VResult
// they pulled, they either forward it or replace it with a new failure.
type VResult[T any] struct {
	value T
	err   *ValidErr[T]
}

// Ok wraps a value as a valid element.
func Ok[T any](v T) VResult[T] {
	return VResult[T]{value: v}
}

// Fail wraps a validation failure as an element. err must not be nil.
func Fail[T any](err *ValidErr[T]) VResult[T] {
	if err == nil {
		panic("validiter: Fail called with nil error")
	}
	return VResult[T]{err: err}
}

// IsOk reports whether the element is a valid value.
func (r VResult[T]) IsOk() bool {
	return r.err == nil
}

// Value returns the contained value. It is the zero value of T when the
// element is a failure.
func (r VResult[T]) Value() T {
	return r.value
}

// Err returns the validation failure, or nil for a valid element.
func (r VResult[T]) Err() *ValidErr[T] {
	return r.err
}

// Get unpacks the element into the usual Go value-and-error pair.
func (r VResult[T]) Get() (T, error) {
	if r.err != nil {
		return r.value, r.err
	}
	return r.value, nil
}

func (r VResult[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("Fail(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}
