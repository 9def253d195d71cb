package validiter

// Collect materializes a validated sequence into a slice, stopping at the
// first failure. On failure it returns nil and the failure; the sequence
// is not pulled past it, so with lazy sources no work happens beyond the
// first violation. This mirrors collecting into a single all-or-nothing
// result.
func Collect[T any](seq Seq[T]) ([]T, error) {
	var out []T
	for res := range seq {
		if err := res.Err(); err != nil {
			return nil, err
		}
		out = append(out, res.Value())
	}
	return out, nil
}

// CollectAll materializes every outcome of a validated sequence, failures
// included, for consumers that want to inspect each element individually
// rather than stop at the first violation.
func CollectAll[T any](seq Seq[T]) []VResult[T] {
	var out []VResult[T]
	for res := range seq {
		out = append(out, res)
	}
	return out
}
