package cmd

import (
	"github.com/rushiraj-gohil/bizdash/core"
	"github.com/rushiraj-gohil/bizdash/internal/contract"
	"github.com/spf13/cobra"
)

// dashboardCmd runs all three dashboard sections against one dataset load.
var dashboardCmd = &cobra.Command{
	Use:   "dashboard [archive-url]",
	Short: "Run every dashboard section: revenue trend, cohort retention, support summary.",
	Long: `Fetch the cleaned e-commerce dataset and print all three analytics sections.

Sections:
- Monthly revenue trend with Z-score anomaly flags
- Cohort retention matrix (signup cohorts, month offsets 0-5)
- Support ticket volume vs payment outcomes per customer

The dataset archive is fetched once and shared by all sections. Repeated runs
reuse the durable cache; pass --refresh to force a re-fetch.

Examples:
  # Full dashboard with the published dataset
  bizdash dashboard

  # Point at a different archive
  bizdash dashboard https://example.com/cleaned_data.zip

  # Machine-readable output
  bizdash dashboard --output json --output-file dashboard.json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteDashboard(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot run dashboard", err)
		}
	},
}
