package cmd

import (
	"github.com/rushiraj-gohil/bizdash/core"
	"github.com/rushiraj-gohil/bizdash/internal/contract"
	"github.com/spf13/cobra"
)

// revenueCmd performs the revenue anomaly analysis.
var revenueCmd = &cobra.Command{
	Use:   "revenue [archive-url]",
	Short: "Show monthly paid revenue with Z-score anomaly flags.",
	Long: `Aggregate paid transactions into a monthly revenue series and flag outliers.

Only transactions with payment status "paid" contribute. Each month's revenue
is standardized against the series mean and sample standard deviation; months
with an absolute Z-score above 2 are flagged as anomalies.

Examples:
  # Revenue trend as a colored table
  bizdash revenue

  # Export the series for plotting
  bizdash revenue --output csv --output-file revenue.csv

  # Columnar export for DuckDB / pandas
  bizdash revenue --output parquet --output-file revenue.parquet`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRevenueTrend(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot run revenue analysis", err)
		}
	},
}
