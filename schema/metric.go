package schema

import (
	"fmt"
	"strconv"
)

// NotComputedToken is rendered in place of a numeric value for metrics
// that were never computed.
const NotComputedToken = "<NotComputed>"

// Metric is the read-only view of a single measurement exposed by the
// upstream profiling pipeline.
type Metric interface {
	// FriendlyName returns the display label.
	FriendlyName() string

	// Value returns the numeric value; ok is false when the metric was
	// never computed.
	Value() (float64, bool)

	// Units returns the unit string, or "" when the metric is unitless.
	Units() string

	// Comparative returns the comparison mode tag. The tag is not
	// validated here; unknown tags surface as a display token at the
	// rendering boundary.
	Comparative() Comparative

	// Description returns the footnote text for the metric.
	Description() string
}

// MetricValue is either a computed number or the not-computed placeholder.
// Formatting dispatches on the variant, so the placeholder can be dropped
// into any numeric table cell without failing.
type MetricValue struct {
	value    float64
	computed bool
}

// Computed wraps a numeric metric value.
func Computed(v float64) MetricValue {
	return MetricValue{value: v, computed: true}
}

// NotComputed returns the placeholder value.
func NotComputed() MetricValue {
	return MetricValue{}
}

// Float returns the numeric value; ok is false for the placeholder.
func (v MetricValue) Float() (float64, bool) {
	return v.value, v.computed
}

// Format renders the value right-aligned to width with prec decimal
// places. The placeholder renders as NotComputedToken right-aligned in the
// same field width.
func (v MetricValue) Format(width, prec int) string {
	if !v.computed {
		return fmt.Sprintf("%*s", width, NotComputedToken)
	}
	return fmt.Sprintf("%*.*f", width, prec, v.value)
}

// String implements fmt.Stringer.
func (v MetricValue) String() string {
	if !v.computed {
		return NotComputedToken
	}
	return strconv.FormatFloat(v.value, 'f', -1, 64)
}

// ParsedMetric is a metric normalized for rendering.
type ParsedMetric struct {
	Label       string
	Value       MetricValue
	Units       string
	Comparative Comparative
	Description string
}

// AdaptMetric projects a Metric into its render-ready form. A metric
// without a value carries the placeholder, empty units, and no comparison
// mode; the description is kept either way. Pure projection.
func AdaptMetric(m Metric) ParsedMetric {
	parsed := ParsedMetric{
		Label:       m.FriendlyName(),
		Description: m.Description(),
	}
	if raw, ok := m.Value(); ok {
		parsed.Value = Computed(raw)
		parsed.Units = m.Units()
		parsed.Comparative = m.Comparative()
	} else {
		parsed.Value = NotComputed()
		parsed.Comparative = NoneComparative
	}
	return parsed
}

// MetricSpec is the concrete Metric used by profile files and the profile
// store. A nil Raw value marks the metric as not computed.
type MetricSpec struct {
	Key  string      `json:"key"`
	Name string      `json:"friendly_name"`
	Raw  *float64    `json:"value"`
	Unit string      `json:"units,omitempty"`
	Mode Comparative `json:"comparative,omitempty"`
	Note string      `json:"description,omitempty"`
}

var _ Metric = (*MetricSpec)(nil) // Compile-time check

// FriendlyName returns the display label.
func (m *MetricSpec) FriendlyName() string { return m.Name }

// Value returns the numeric value; ok is false when Raw is nil.
func (m *MetricSpec) Value() (float64, bool) {
	if m.Raw == nil {
		return 0, false
	}
	return *m.Raw, true
}

// Units returns the unit string.
func (m *MetricSpec) Units() string { return m.Unit }

// Comparative returns the comparison mode tag.
func (m *MetricSpec) Comparative() Comparative { return m.Mode }

// Description returns the footnote text.
func (m *MetricSpec) Description() string { return m.Note }
