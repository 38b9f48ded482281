package cmd

import (
	"github.com/rushiraj-gohil/bizdash/core"
	"github.com/rushiraj-gohil/bizdash/internal/contract"
	"github.com/spf13/cobra"
)

// checkCmd focused on CI/CD policy enforcement.
var checkCmd = &cobra.Command{
	Use:   "check [archive-url]",
	Short: "Enforce a revenue anomaly budget for CI/CD pipelines (fails build on violations)",
	Long: `Recompute the revenue trend and fail when anomalous months exceed the budget.

Designed for CI/CD integration - exits non-zero when the dataset shows more
anomalous months than --max-anomalies allows. The default budget is 0, so any
anomaly fails the check.

Use cases:
- Data pipeline gates - block publishing a dataset with unexplained spikes
- Scheduled monitoring - alert when a new month breaks the trend
- Release validation - confirm a cleaned dataset before loading dashboards

Examples:
  # Fail on any anomalous month
  bizdash check

  # Tolerate one known anomaly (e.g. a flash sale month)
  bizdash check --max-anomalies 1

  # Gate a candidate dataset
  bizdash check https://example.com/candidate_data.zip`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteDashboardCheck(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Health check failed", err)
		}
	},
}
