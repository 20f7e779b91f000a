package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_InsertionOrder(t *testing.T) {
	status := NewStatus()
	status.Set("b", ScalarEntry("two"))
	status.Set("a", ScalarEntry("one"))
	status.Set("c", ScalarEntry("three"))

	assert.Equal(t, []string{"b", "a", "c"}, status.Keys())
	assert.Equal(t, 3, status.Len())
}

func TestStatus_OverwriteKeepsPosition(t *testing.T) {
	status := NewStatus()
	status.Set("a", ScalarEntry("one"))
	status.Set("b", ScalarEntry("two"))
	status.Set("a", ScalarEntry("uno"))

	assert.Equal(t, []string{"a", "b"}, status.Keys())
	e, ok := status.Get("a")
	assert.True(t, ok)
	v, _ := e.Scalar()
	assert.Equal(t, "uno", v)
}

func TestStatus_NameAndBackend(t *testing.T) {
	status := NewStatus()
	status.Set(NameKey, ScalarEntry("resnet18"))
	status.Set(BackendKey, ScalarEntry("TorchBackend"))

	assert.Equal(t, "resnet18", status.Name())
	assert.Equal(t, "TorchBackend", status.Backend())
}

func TestStatus_NameAbsent(t *testing.T) {
	assert.Equal(t, "", NewStatus().Name())
}

func TestEntry_Variants(t *testing.T) {
	scalar := ScalarEntry("resnet18")
	_, ok := scalar.Metric()
	assert.False(t, ok)
	v, ok := scalar.Scalar()
	assert.True(t, ok)
	assert.Equal(t, "resnet18", v)

	metric := MetricEntry(&MetricSpec{Key: "x", Name: "X"})
	_, ok = metric.Scalar()
	assert.False(t, ok)
	m, ok := metric.Metric()
	assert.True(t, ok)
	assert.Equal(t, "X", m.FriendlyName())
}

func TestEntry_ZeroValueHasNoPayload(t *testing.T) {
	var e Entry
	_, ok := e.Metric()
	assert.False(t, ok)
}
