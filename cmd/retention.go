package cmd

import (
	"github.com/rushiraj-gohil/bizdash/core"
	"github.com/rushiraj-gohil/bizdash/internal/contract"
	"github.com/spf13/cobra"
)

// retentionCmd performs the cohort retention analysis.
var retentionCmd = &cobra.Command{
	Use:   "retention [archive-url]",
	Short: "Show the cohort retention matrix for month offsets 0-5.",
	Long: `Group customers into signup-month cohorts and track session activity.

Each cohort row shows the percentage of its customers active at each month
offset from signup (0 through 5). Rates are shaded by intensity in table
output, mirroring a heatmap.

Note: a cohort only counts customers with at least one session inside the
tracked window, so the denominator excludes signups who never came back.

Examples:
  # Retention heatmap table
  bizdash retention

  # Tidy per-cell export
  bizdash retention --output csv --output-file retention.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCohortRetention(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot run retention analysis", err)
		}
	},
}
