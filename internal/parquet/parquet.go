// Package parquet provides data structures and functions for exporting
// profile reports to Parquet using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"

	"github.com/parquet-go/parquet-go"
)

// MetricRow is one metric of a single-profile report in columnar form.
type MetricRow struct {
	// ProfileName identifies the profiling run this metric belongs to
	ProfileName string `parquet:"profile_name,snappy"`

	// Backend is the execution backend of the profiling run
	Backend string `parquet:"backend,snappy"`

	// Key is the stable metric key (e.g. model_size)
	Key string `parquet:"key,snappy"`

	// Label is the human-readable metric name
	Label string `parquet:"label,snappy"`

	// Value is the metric value (nullable, nil when never computed)
	Value *float64 `parquet:"value,optional,snappy"`

	// Units is the unit string, empty for unitless metrics
	Units string `parquet:"units,snappy"`

	// Description is the footnote text for the metric
	Description string `parquet:"description,snappy"`
}

// ComparisonRow is one metric of a two-profile comparison in columnar form.
type ComparisonRow struct {
	// BaseName identifies the base profiling run
	BaseName string `parquet:"base_name,snappy"`

	// TargetName identifies the target profiling run
	TargetName string `parquet:"target_name,snappy"`

	// Key is the stable metric key
	Key string `parquet:"key,snappy"`

	// Label is the human-readable metric name
	Label string `parquet:"label,snappy"`

	// Enhancement is the formatted comparison cell (e.g. 0.50x, ---, INF)
	Enhancement string `parquet:"enhancement,snappy"`

	// BaseValue is the metric value of the base run (nullable)
	BaseValue *float64 `parquet:"base_value,optional,snappy"`

	// TargetValue is the metric value of the target run (nullable)
	TargetValue *float64 `parquet:"target_value,optional,snappy"`

	// Units is the unit string taken from the base run
	Units string `parquet:"units,snappy"`

	// Description is the footnote text for the metric
	Description string `parquet:"description,snappy"`
}

// WriteMetricRows writes profile metric rows to w in Parquet format.
// The schema is automatically derived from the MetricRow struct tags.
func WriteMetricRows(w io.Writer, rows []MetricRow) error {
	writer := parquet.NewGenericWriter[MetricRow](w)

	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write metric rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}

// WriteComparisonRows writes comparison rows to w in Parquet format.
// The schema is automatically derived from the ComparisonRow struct tags.
func WriteComparisonRows(w io.Writer, rows []ComparisonRow) error {
	writer := parquet.NewGenericWriter[ComparisonRow](w)

	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write comparison rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}
