// Package schema has the data model, constants and policies shared by all
// parts of modelprof: metrics, comparative modes, profile statuses, and
// the display ordering applied before rendering.
package schema

// Entry is a single value in a profile status mapping. It is a tagged
// variant: either a reserved scalar (the profile name or backend) or a
// metric. The tag lets the renderer skip non-metric entries without any
// runtime type probing.
type Entry struct {
	scalar   string
	metric   Metric
	isScalar bool
}

// ScalarEntry wraps a reserved scalar value such as the profile name.
func ScalarEntry(value string) Entry {
	return Entry{scalar: value, isScalar: true}
}

// MetricEntry wraps a metric.
func MetricEntry(m Metric) Entry {
	return Entry{metric: m}
}

// Scalar returns the scalar payload; ok is false for metric entries.
func (e Entry) Scalar() (string, bool) {
	return e.scalar, e.isScalar
}

// Metric returns the metric payload; ok is false for scalar entries and
// for zero-value entries that carry neither variant.
func (e Entry) Metric() (Metric, bool) {
	if e.isScalar || e.metric == nil {
		return nil, false
	}
	return e.metric, true
}

// Status is the ordered metric-key to entry mapping produced by one
// profiling run. The reserved keys NameKey and BackendKey hold scalar
// identity entries; every other key is expected to hold a metric.
//
// Iteration follows first-insertion order. Overwriting an existing key
// keeps its original position.
type Status struct {
	keys    []string
	entries map[string]Entry
}

// NewStatus returns an empty status mapping.
func NewStatus() *Status {
	return &Status{entries: make(map[string]Entry)}
}

// Set inserts or replaces the entry for key.
func (s *Status) Set(key string, e Entry) {
	if _, ok := s.entries[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.entries[key] = e
}

// Get returns the entry for key.
func (s *Status) Get(key string) (Entry, bool) {
	e, ok := s.entries[key]
	return e, ok
}

// Keys returns the keys in insertion order. The slice is a copy.
func (s *Status) Keys() []string {
	keys := make([]string, len(s.keys))
	copy(keys, s.keys)
	return keys
}

// Len returns the number of entries.
func (s *Status) Len() int {
	return len(s.keys)
}

// Name returns the scalar stored under NameKey, or "" when absent.
func (s *Status) Name() string {
	return s.scalarAt(NameKey)
}

// Backend returns the scalar stored under BackendKey, or "" when absent.
func (s *Status) Backend() string {
	return s.scalarAt(BackendKey)
}

func (s *Status) scalarAt(key string) string {
	if e, ok := s.entries[key]; ok {
		if v, ok := e.Scalar(); ok {
			return v
		}
	}
	return ""
}
