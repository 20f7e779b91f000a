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

// profileReportModel is the JSON shape of a single-profile report.
type profileReportModel struct {
	Name    string           `json:"name"`
	Backend string           `json:"backend"`
	Metrics []metricRowModel `json:"metrics"`
}

// metricRowModel is one metric row in JSON output. Value is null for
// metrics that were never computed.
type metricRowModel struct {
	Key         string   `json:"key"`
	Label       string   `json:"label"`
	Value       *float64 `json:"value"`
	Units       string   `json:"units,omitempty"`
	Description string   `json:"description,omitempty"`
}

func buildProfileReportModel(status *schema.Status) profileReportModel {
	model := profileReportModel{Name: status.Name(), Backend: status.Backend()}
	for _, row := range core.ProfileRows(status) {
		model.Metrics = append(model.Metrics, metricRowModel{
			Key:         row.Key,
			Label:       row.Label,
			Value:       valuePointer(row.Value),
			Units:       row.Units,
			Description: row.Description,
		})
	}
	return model
}

// writeProfileTextResults writes the classic fixed-width text report.
func writeProfileTextResults(status *schema.Status, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		out := core.RenderProfile(status, renderOptions(cfg))
		if !strings.HasSuffix(out, "\n") {
			out += "\n"
		}
		_, err := io.WriteString(w, out)
		return err
	}, "Wrote text")
}

// writeProfileGridResults writes the report as a terminal-aware table.
func writeProfileGridResults(status *schema.Status, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeProfileGrid(status, cfg, w)
	}, "Wrote grid")
}

func writeProfileGrid(status *schema.Status, cfg *contract.Config, w io.Writer) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Metric", "Value", "Units"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	labelWidth := getMaxTableLabelWidth(cfg, false)
	var data [][]string
	for _, row := range core.ProfileRows(status) {
		data = append(data, []string{
			contract.TruncateLabel(row.Label, labelWidth),
			valueCell(row.Value),
			row.Units,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nProfile: %s | Backend: %s | Metrics: %d\n",
		status.Name(), status.Backend(), len(data))
	return err
}

// writeProfileJSONResults handles opening the file and calling the JSON writer.
func writeProfileJSONResults(status *schema.Status, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, buildProfileReportModel(status))
	}, "Wrote JSON")
}

// writeProfileCSVResults handles opening the file and calling the CSV writer.
func writeProfileCSVResults(status *schema.Status, cfg *contract.Config) error {
	header := []string{"key", "label", "value", "units", "description"}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for _, row := range core.ProfileRows(status) {
				record := []string{row.Key, row.Label, valueCell(row.Value), row.Units, row.Description}
				if err := csvWriter.Write(record); err != nil {
					return fmt.Errorf("failed to write CSV row: %w", err)
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeProfileParquetResults exports the report rows in Parquet format.
func writeProfileParquetResults(status *schema.Status, cfg *contract.Config) error {
	var rows []parquet.MetricRow
	for _, row := range core.ProfileRows(status) {
		rows = append(rows, parquet.MetricRow{
			ProfileName: status.Name(),
			Backend:     status.Backend(),
			Key:         row.Key,
			Label:       row.Label,
			Value:       valuePointer(row.Value),
			Units:       row.Units,
			Description: row.Description,
		})
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return parquet.WriteMetricRows(w, rows)
	}, "Wrote Parquet")
}
