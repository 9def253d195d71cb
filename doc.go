// Package validiter provides lazy validation adapters for sequences, so
// that checks like "at most n elements", "every value in range", or "all
// rows the same length" compose in the same declarative style as mapping
// and filtering, instead of needing a separate loop with hand-rolled
// counters.
//
// A pipeline starts by promoting a plain [iter.Seq] with [Validate] (or
// rebasing an already-fallible sequence with [LiftErrs] or [TryMap]), then
// stacks adapters, each wrapping the previous one:
//
//	seq := validiter.Validate(slices.Values(readings))
//	seq = validiter.Between(seq, 2.0, 8.0)
//	seq = validiter.AtMost(seq, 100)
//
//	values, err := validiter.Collect(seq)
//
// Each element flows through the stack exactly once, in order, and nothing
// is evaluated until the final sequence is consumed. A failure produced by
// one adapter is forwarded untouched by every adapter after it, so adapter
// order decides which check gets to reject an element first. Failures are
// ordinary elements of the output sequence, not terminal errors: the
// consumer chooses between stopping at the first one ([Collect]) and
// inspecting all of them ([CollectAll] or a plain range loop).
//
// Sub-packages:
//   - vrule – bridges ozzo-validation rules and govalidator string formats
//     into pipelines
package validiter
