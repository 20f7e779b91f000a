package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func metricAt(key string) Entry {
	return MetricEntry(&MetricSpec{Key: key, Name: key})
}

func TestDisplayOrder_CanonicalFirst(t *testing.T) {
	status := NewStatus()
	status.Set(ExecutionTimeKey, metricAt(ExecutionTimeKey))
	status.Set(EvalMetricKey, metricAt(EvalMetricKey))
	status.Set(ModelSizeKey, metricAt(ModelSizeKey))

	ordered := DisplayOrder(status)
	assert.Equal(t, []string{EvalMetricKey, ModelSizeKey, ExecutionTimeKey}, ordered.Keys())
}

func TestDisplayOrder_AbsentCanonicalSkipped(t *testing.T) {
	status := NewStatus()
	status.Set(FlopsKey, metricAt(FlopsKey))

	ordered := DisplayOrder(status)
	assert.Equal(t, []string{FlopsKey}, ordered.Keys())
}

func TestDisplayOrder_LeftoversKeepInsertionOrder(t *testing.T) {
	status := NewStatus()
	status.Set(NameKey, ScalarEntry("resnet18"))
	status.Set(BackendKey, ScalarEntry("TorchBackend"))
	status.Set("layers", metricAt("layers"))
	status.Set(EvalMetricKey, metricAt(EvalMetricKey))
	status.Set("custom_metric", metricAt("custom_metric"))

	ordered := DisplayOrder(status)
	assert.Equal(t, []string{
		EvalMetricKey, NameKey, BackendKey, "layers", "custom_metric",
	}, ordered.Keys())
}

func TestDisplayOrder_InferenceTimeDropped(t *testing.T) {
	status := NewStatus()
	status.Set(InferenceTimeKey, metricAt(InferenceTimeKey))
	status.Set(ExecutionTimeKey, metricAt(ExecutionTimeKey))

	ordered := DisplayOrder(status)
	assert.Equal(t, []string{ExecutionTimeKey}, ordered.Keys())
}

func TestDisplayOrder_InputNotMutated(t *testing.T) {
	status := NewStatus()
	status.Set("z", metricAt("z"))
	status.Set(EvalMetricKey, metricAt(EvalMetricKey))

	_ = DisplayOrder(status)
	assert.Equal(t, []string{"z", EvalMetricKey}, status.Keys())
}

func TestDisplayOrder_NilInput(t *testing.T) {
	ordered := DisplayOrder(nil)
	assert.Equal(t, 0, ordered.Len())
}
