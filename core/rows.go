package core

import (
	"errors"
	"fmt"

	"github.com/modelprof/modelprof/schema"
)

// Display tokens emitted in place of a comparison result.
const (
	UnsupportedUnitsToken = "<Unsupported units>"
	ErrorComparingToken   = "<Error Comparing>"
	InfinityToken         = "INF"
	NoComparisonToken     = "---"
)

// ReportRow is one metric line of a single-profile report.
type ReportRow struct {
	Key         string
	Label       string
	Units       string
	Value       schema.MetricValue
	Description string
}

// ComparisonRow is one metric line of a two-profile report. Enhancement
// carries the formatted comparison cell, never an error.
type ComparisonRow struct {
	Key         string
	Label       string
	Units       string
	Enhancement string
	BaseValue   schema.MetricValue
	TargetValue schema.MetricValue
	Description string
}

// ProfileRows flattens a status into report rows, keeping its key order.
// Scalar entries are skipped.
func ProfileRows(status *schema.Status) []ReportRow {
	var rows []ReportRow
	for _, key := range status.Keys() {
		entry, _ := status.Get(key)
		m, ok := entry.Metric()
		if !ok {
			continue
		}
		parsed := schema.AdaptMetric(m)
		rows = append(rows, ReportRow{
			Key:         key,
			Label:       parsed.Label,
			Units:       parsed.Units,
			Value:       parsed.Value,
			Description: parsed.Description,
		})
	}
	return rows
}

// ComparisonRows joins two statuses on metric key, keeping the base
// status's key order. Keys missing a metric on either side are skipped.
// The label, units, comparison mode, and description all come from the
// base side.
func ComparisonRows(base, target *schema.Status) []ComparisonRow {
	var rows []ComparisonRow
	for _, key := range base.Keys() {
		baseEntry, _ := base.Get(key)
		baseMetric, ok := baseEntry.Metric()
		if !ok {
			continue
		}
		targetEntry, ok := target.Get(key)
		if !ok {
			continue
		}
		targetMetric, ok := targetEntry.Metric()
		if !ok {
			continue
		}

		pa := schema.AdaptMetric(baseMetric)
		pb := schema.AdaptMetric(targetMetric)
		rows = append(rows, ComparisonRow{
			Key:         key,
			Label:       pa.Label,
			Units:       pa.Units,
			Enhancement: enhancementCell(pa, pb),
			BaseValue:   pa.Value,
			TargetValue: pb.Value,
			Description: pa.Description,
		})
	}
	return rows
}

// enhancementCell formats the comparison of one metric across two runs.
// Every failure mode maps to a display token so that a single bad metric
// never sinks the whole report.
func enhancementCell(pa, pb schema.ParsedMetric) string {
	if pa.Units != "" && pb.Units != "" && pa.Units != pb.Units {
		return UnsupportedUnitsToken
	}

	mode, err := schema.ParseComparative(string(pa.Comparative))
	if err != nil {
		return ErrorComparingToken
	}

	baseVal, baseOK := pa.Value.Float()
	targetVal, targetOK := pb.Value.Float()
	if !baseOK || !targetOK {
		return NoComparisonToken
	}

	result, ok, err := schema.Compare(mode, baseVal, targetVal)
	switch {
	case errors.Is(err, schema.ErrZeroDenominator):
		return InfinityToken
	case err != nil:
		return ErrorComparingToken
	case !ok:
		return NoComparisonToken
	}

	cell := fmt.Sprintf("%.2f", result)
	if mode != schema.DiffComparative {
		cell += "x"
	}
	return cell
}
