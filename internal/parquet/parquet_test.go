package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestMetricRowStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	schema := parquet.SchemaOf(new(MetricRow))
	require.NotNil(t, schema)

	expectedColumns := []string{
		"profile_name",
		"backend",
		"key",
		"label",
		"value",
		"units",
		"description",
	}

	for _, colName := range expectedColumns {
		col, ok := schema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestComparisonRowStructTags(t *testing.T) {
	schema := parquet.SchemaOf(new(ComparisonRow))
	require.NotNil(t, schema)

	expectedColumns := []string{
		"base_name",
		"target_name",
		"key",
		"label",
		"enhancement",
		"base_value",
		"target_value",
		"units",
		"description",
	}

	for _, colName := range expectedColumns {
		_, ok := schema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
	}
}

func TestWriteMetricRows(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "profile.parquet")

	data := []MetricRow{
		{
			ProfileName: "resnet18",
			Backend:     "TorchBackend",
			Key:         "model_size",
			Label:       "Model Size",
			Value:       floatPtr(44.59),
			Units:       "MB",
			Description: "disk size of the serialized model",
		},
		{
			ProfileName: "resnet18",
			Backend:     "TorchBackend",
			Key:         "flops",
			Label:       "MACs",
			Value:       nil, // never computed - nullable field
			Units:       "GFLOPs",
		},
	}

	file, err := os.Create(outputPath)
	require.NoError(t, err)
	require.NoError(t, WriteMetricRows(file, data))
	require.NoError(t, file.Close())

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should not be empty")

	// Read back and verify data
	readFile, err := os.Open(outputPath)
	require.NoError(t, err)
	defer readFile.Close()

	reader := parquet.NewGenericReader[MetricRow](readFile)
	defer reader.Close()

	readData := make([]MetricRow, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err, "Should be able to read data")
	}
	require.Equal(t, len(data), n, "Should read all records")

	assert.Equal(t, "model_size", readData[0].Key)
	require.NotNil(t, readData[0].Value)
	assert.InDelta(t, 44.59, *readData[0].Value, 1e-12)
	assert.Nil(t, readData[1].Value, "Missing value should round-trip as nil")
	assert.Equal(t, "GFLOPs", readData[1].Units)
}

func TestWriteComparisonRows(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "comparison.parquet")

	data := []ComparisonRow{
		{
			BaseName:    "resnet18",
			TargetName:  "resnet18-q",
			Key:         "model_size",
			Label:       "Model Size",
			Enhancement: "0.50x",
			BaseValue:   floatPtr(44.59),
			TargetValue: floatPtr(22.295),
			Units:       "MB",
		},
		{
			BaseName:    "resnet18",
			TargetName:  "resnet18-q",
			Key:         "flops",
			Label:       "MACs",
			Enhancement: "---",
			BaseValue:   floatPtr(1.82),
			TargetValue: nil,
			Units:       "GFLOPs",
		},
	}

	file, err := os.Create(outputPath)
	require.NoError(t, err)
	require.NoError(t, WriteComparisonRows(file, data))
	require.NoError(t, file.Close())

	readFile, err := os.Open(outputPath)
	require.NoError(t, err)
	defer readFile.Close()

	reader := parquet.NewGenericReader[ComparisonRow](readFile)
	defer reader.Close()

	readData := make([]ComparisonRow, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err, "Should be able to read data")
	}
	require.Equal(t, len(data), n)

	assert.Equal(t, "0.50x", readData[0].Enhancement)
	assert.Equal(t, "---", readData[1].Enhancement)
	assert.Nil(t, readData[1].TargetValue)
}

func TestWriteMetricRows_Empty(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "empty.parquet")
	file, err := os.Create(outputPath)
	require.NoError(t, err)
	require.NoError(t, WriteMetricRows(file, nil))
	require.NoError(t, file.Close())

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0), "Even an empty export has a footer")
}
