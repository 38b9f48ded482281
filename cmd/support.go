package cmd

import (
	"github.com/rushiraj-gohil/bizdash/core"
	"github.com/rushiraj-gohil/bizdash/internal/contract"
	"github.com/spf13/cobra"
)

// supportCmd performs the support-vs-payment analysis.
var supportCmd = &cobra.Command{
	Use:   "support [archive-url]",
	Short: "Correlate support ticket volume with payment outcomes per customer.",
	Long: `Join per-customer support ticket counts with payment outcome counts.

One row per customer with at least one ticket, carrying their ticket count and
the number of paid, refunded and charged-back transactions. Counts are always
present and default to 0, so the output is safe for scatter plotting.

Examples:
  # Top ticketing customers as a table
  bizdash support --limit 20

  # Full row set for correlation analysis
  bizdash support --output csv --output-file support.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSupportPayment(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot run support analysis", err)
		}
	},
}
