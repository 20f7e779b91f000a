package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/modelprof/modelprof/core"
	"github.com/modelprof/modelprof/internal/contract"
	"github.com/modelprof/modelprof/internal/parquet"
	"github.com/modelprof/modelprof/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// comparisonReportModel is the JSON shape of a two-profile report.
type comparisonReportModel struct {
	BaseName      string               `json:"base_name"`
	BaseBackend   string               `json:"base_backend"`
	TargetName    string               `json:"target_name"`
	TargetBackend string               `json:"target_backend"`
	Metrics       []comparisonRowModel `json:"metrics"`
}

// comparisonRowModel is one metric row in JSON comparison output.
type comparisonRowModel struct {
	Key         string   `json:"key"`
	Label       string   `json:"label"`
	Enhancement string   `json:"enhancement"`
	BaseValue   *float64 `json:"base_value"`
	TargetValue *float64 `json:"target_value"`
	Units       string   `json:"units,omitempty"`
	Description string   `json:"description,omitempty"`
}

func buildComparisonReportModel(base, target *schema.Status) comparisonReportModel {
	model := comparisonReportModel{
		BaseName:      base.Name(),
		BaseBackend:   base.Backend(),
		TargetName:    target.Name(),
		TargetBackend: target.Backend(),
	}
	for _, row := range core.ComparisonRows(base, target) {
		model.Metrics = append(model.Metrics, comparisonRowModel{
			Key:         row.Key,
			Label:       row.Label,
			Enhancement: row.Enhancement,
			BaseValue:   valuePointer(row.BaseValue),
			TargetValue: valuePointer(row.TargetValue),
			Units:       row.Units,
			Description: row.Description,
		})
	}
	return model
}

// writeComparisonTextResults writes the classic fixed-width text report.
func writeComparisonTextResults(base, target *schema.Status, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		out := core.RenderComparison(base, target, renderOptions(cfg))
		if !strings.HasSuffix(out, "\n") {
			out += "\n"
		}
		_, err := io.WriteString(w, out)
		return err
	}, "Wrote text")
}

// writeComparisonGridResults writes the comparison as a terminal-aware table.
func writeComparisonGridResults(base, target *schema.Status, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeComparisonGrid(base, target, cfg, w)
	}, "Wrote grid")
}

func writeComparisonGrid(base, target *schema.Status, cfg *contract.Config, w io.Writer) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Metric", "Enhancement", base.Name(), target.Name(), "Units"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	labelWidth := getMaxTableLabelWidth(cfg, true)
	var data [][]string
	for _, row := range core.ComparisonRows(base, target) {
		enhancement := row.Enhancement
		if cfg.UseColors {
			enhancement = contract.GetColorEnhancement(enhancement)
		}
		data = append(data, []string{
			contract.TruncateLabel(row.Label, labelWidth),
			enhancement,
			valueCell(row.BaseValue),
			valueCell(row.TargetValue),
			row.Units,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nBase: %s (%s) | Target: %s (%s) | Metrics: %d\n",
		base.Name(), base.Backend(), target.Name(), target.Backend(), len(data))
	return err
}

// writeComparisonJSONResults handles opening the file and calling the JSON writer.
func writeComparisonJSONResults(base, target *schema.Status, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, buildComparisonReportModel(base, target))
	}, "Wrote JSON")
}

// writeComparisonCSVResults handles opening the file and calling the CSV writer.
func writeComparisonCSVResults(base, target *schema.Status, cfg *contract.Config) error {
	header := []string{"key", "label", "enhancement", "base_value", "target_value", "units", "description"}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for _, row := range core.ComparisonRows(base, target) {
				record := []string{
					row.Key, row.Label, row.Enhancement,
					valueCell(row.BaseValue), valueCell(row.TargetValue),
					row.Units, row.Description,
				}
				if err := csvWriter.Write(record); err != nil {
					return fmt.Errorf("failed to write CSV row: %w", err)
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeComparisonParquetResults exports the comparison rows in Parquet format.
func writeComparisonParquetResults(base, target *schema.Status, cfg *contract.Config) error {
	var rows []parquet.ComparisonRow
	for _, row := range core.ComparisonRows(base, target) {
		rows = append(rows, parquet.ComparisonRow{
			BaseName:    base.Name(),
			TargetName:  target.Name(),
			Key:         row.Key,
			Label:       row.Label,
			Enhancement: row.Enhancement,
			BaseValue:   valuePointer(row.BaseValue),
			TargetValue: valuePointer(row.TargetValue),
			Units:       row.Units,
			Description: row.Description,
		})
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return parquet.WriteComparisonRows(w, rows)
	}, "Wrote Parquet")
}
