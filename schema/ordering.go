package schema

// CanonicalOrder is the display priority for well-known metric keys:
// evaluation metric first, then size, complexity, parameter count, memory
// footprint, and execution time.
var CanonicalOrder = []string{
	EvalMetricKey,
	ModelSizeKey,
	FlopsKey,
	TotalParamsKey,
	MemoryFootprintKey,
	ExecutionTimeKey,
}

// DisplayOrder derives a new status ordered for display: canonical keys
// first (absent ones skipped, no placeholders), then every remaining key
// in the input's insertion order. InferenceTimeKey is always dropped.
// The input is not mutated.
func DisplayOrder(status *Status) *Status {
	ordered := NewStatus()
	if status == nil {
		return ordered
	}

	canonical := make(map[string]struct{}, len(CanonicalOrder))
	for _, key := range CanonicalOrder {
		canonical[key] = struct{}{}
		if e, ok := status.Get(key); ok {
			ordered.Set(key, e)
		}
	}

	for _, key := range status.Keys() {
		if key == InferenceTimeKey {
			continue
		}
		if _, ok := canonical[key]; ok {
			continue
		}
		if e, ok := status.Get(key); ok {
			ordered.Set(key, e)
		}
	}

	return ordered
}
