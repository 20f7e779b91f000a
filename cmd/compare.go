package cmd

import (
	"github.com/modelprof/modelprof/core"
	"github.com/modelprof/modelprof/internal/contract"
	"github.com/modelprof/modelprof/internal/outwriter"
	"github.com/spf13/cobra"
)

// compareCmd renders a side-by-side comparison of two profiles.
var compareCmd = &cobra.Command{
	Use:   "compare [base-profile] [target-profile]",
	Short: "Compare the metrics of two model profiles",
	Long: `Compare the metrics of two model profiles side by side.

Each metric present in both profiles gets an enhancement cell computed
from the base profile's comparison mode:
- ratio metrics show target/base with an "x" suffix (e.g. 0.50x)
- diff metrics show target-base as a plain number
- metrics without a comparison mode show ---

Ideal for:
- Quantization and pruning audits - see what an optimization actually cost
- Backend comparisons - same model on different inference runtimes
- Regression tracking - compare against a stored baseline

Examples:
  # Compare an optimized model against its baseline
  modelprof compare resnet18.json resnet18-quantized.json

  # Compare two saved profiles with colored grid output
  modelprof compare resnet18 resnet18-q --from-store --output grid

  # Export the comparison for tracking
  modelprof compare base.json target.json --output csv --output-file delta.csv`,
	Args:    cobra.ExactArgs(2),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		base, target, err := core.ExecuteCompare(cfg, store)
		if err != nil {
			contract.LogFatal("Cannot run profile comparison", err)
		}
		if err := outwriter.WriteComparisonResults(base, target, cfg); err != nil {
			contract.LogFatal("Cannot write comparison report", err)
		}
	},
}
