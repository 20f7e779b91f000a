package cmd

import (
	"github.com/modelprof/modelprof/core"
	"github.com/modelprof/modelprof/internal/contract"
	"github.com/modelprof/modelprof/internal/outwriter"
	"github.com/spf13/cobra"
)

// showCmd renders a single profile report.
var showCmd = &cobra.Command{
	Use:   "show [profile]",
	Short: "Render the metric report for a single model profile",
	Long: `Render the metric report for a single model profile.

The profile argument is a path to a profile JSON file, or the name of a
saved profile when --from-store is set.

Well-known metrics are shown in a fixed display order so reports stay
comparable across runs. Use --raw-order to keep the profile's own order.

Examples:
  # Render a profile from disk
  modelprof show resnet18.json

  # Render a saved profile as a grid with descriptions
  modelprof show resnet18 --from-store --output grid --notes

  # Export metrics to CSV
  modelprof show resnet18.json --output csv --output-file metrics.csv`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := core.ExecuteShow(cfg, store)
		if err != nil {
			contract.LogFatal("Cannot render profile report", err)
		}
		if err := outwriter.WriteProfileResults(status, cfg); err != nil {
			contract.LogFatal("Cannot write profile report", err)
		}
	},
}
