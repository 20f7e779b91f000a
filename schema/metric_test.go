package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func TestMetricValue_Format(t *testing.T) {
	assert.Equal(t, "               10.0000", Computed(10.0).Format(22, 4))
	assert.Equal(t, "0.50", Computed(0.5).Format(0, 2))
}

func TestMetricValue_FormatNotComputed(t *testing.T) {
	// The placeholder is right-aligned in the same field width as a number.
	assert.Equal(t, "        <NotComputed>", NotComputed().Format(21, 4))
	assert.Equal(t, "<NotComputed>", NotComputed().Format(0, 4))
}

func TestMetricValue_Float(t *testing.T) {
	v, ok := Computed(3.14).Float()
	assert.True(t, ok)
	assert.InDelta(t, 3.14, v, 1e-12)

	_, ok = NotComputed().Float()
	assert.False(t, ok)
}

func TestAdaptMetric_ComputedValue(t *testing.T) {
	m := &MetricSpec{
		Key:  ModelSizeKey,
		Name: "Model Size",
		Raw:  floatPtr(12.5),
		Unit: "MB",
		Mode: RatioComparative,
		Note: "disk size of the serialized model",
	}

	parsed := AdaptMetric(m)
	assert.Equal(t, "Model Size", parsed.Label)
	assert.Equal(t, "MB", parsed.Units)
	assert.Equal(t, RatioComparative, parsed.Comparative)
	assert.Equal(t, "disk size of the serialized model", parsed.Description)

	v, ok := parsed.Value.Float()
	assert.True(t, ok)
	assert.InDelta(t, 12.5, v, 1e-12)
}

func TestAdaptMetric_MissingValue(t *testing.T) {
	m := &MetricSpec{
		Key:  FlopsKey,
		Name: "MACs",
		Unit: "GFLOPs",
		Mode: RatioComparative,
		Note: "number of multiply-accumulate operations",
	}

	parsed := AdaptMetric(m)
	_, ok := parsed.Value.Float()
	assert.False(t, ok)

	// A missing value suppresses the units and the comparison mode, but
	// keeps the footnote text.
	assert.Equal(t, "", parsed.Units)
	assert.Equal(t, NoneComparative, parsed.Comparative)
	assert.Equal(t, "number of multiply-accumulate operations", parsed.Description)
}

func TestAdaptMetric_InvalidComparativePreserved(t *testing.T) {
	// Unknown tags pass through untouched; the renderer turns them into a
	// display token instead of failing.
	m := &MetricSpec{Key: "x", Name: "X", Raw: floatPtr(1), Mode: Comparative("bogus")}
	parsed := AdaptMetric(m)
	assert.Equal(t, Comparative("bogus"), parsed.Comparative)
}
