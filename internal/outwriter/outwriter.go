// Package outwriter has output and writer logic.
package outwriter

import (
	"fmt"

	"github.com/modelprof/modelprof/core"
	"github.com/modelprof/modelprof/internal/contract"
	"github.com/modelprof/modelprof/schema"
)

// WriteProfileResults outputs a single-profile report, dispatching based on
// the output format configured.
func WriteProfileResults(status *schema.Status, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.GridOut:
		return writeProfileGridResults(status, cfg)
	case schema.JSONOut:
		if err := writeProfileJSONResults(status, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeProfileCSVResults(status, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeProfileParquetResults(status, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to the classic fixed-width text report
		return writeProfileTextResults(status, cfg)
	}
	return nil
}

// WriteComparisonResults outputs a two-profile comparison report,
// dispatching based on the output format configured.
func WriteComparisonResults(base, target *schema.Status, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.GridOut:
		return writeComparisonGridResults(base, target, cfg)
	case schema.JSONOut:
		if err := writeComparisonJSONResults(base, target, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeComparisonCSVResults(base, target, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeComparisonParquetResults(base, target, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		return writeComparisonTextResults(base, target, cfg)
	}
	return nil
}

// renderOptions maps the run configuration to renderer options.
func renderOptions(cfg *contract.Config) core.Options {
	return core.Options{Title: cfg.Title, Notes: cfg.Notes}
}
