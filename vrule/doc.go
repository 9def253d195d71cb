// Package vrule bridges existing validator libraries into validiter
// pipelines, so per-element checks can reuse the ozzo-validation rule set
// and govalidator's named string formats instead of hand-written
// predicates:
//
//	seq := validiter.Validate(slices.Values(amounts))
//	seq = vrule.Checked(seq, validation.Min(0.01), validation.Max(10_000.0))
//
//	emails := validiter.Validate(slices.Values(addresses))
//	emails = vrule.Format(emails, "email")
//
// Rejected elements become [validiter.KindInvalid] failures; for Checked
// the underlying rule error is kept as the failure's Cause.
package vrule
