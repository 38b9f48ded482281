package core

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rushiraj-gohil/bizdash/internal/contract"
	"github.com/rushiraj-gohil/bizdash/schema"
)

// ExecuteDashboardCheck runs the check command for CI/CD gating.
// It recomputes the revenue trend and fails with a non-zero exit code when the
// number of anomalous months exceeds the configured budget.
func ExecuteDashboardCheck(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	start := time.Now()

	revenue, err := GetRevenueTrendResult(ctx, cfg, mgr)
	if err != nil {
		return err
	}

	result := BuildCheckResult(revenue, cfg.MaxAnomalies)
	printCheckResult(&result, time.Since(start))

	// Return error if check failed
	if !result.Passed {
		fmt.Printf("%d anomalous month(s) over budget of %d\n", len(result.AnomalousMonths), result.MaxAnomalies)
		os.Exit(1)
	}
	return nil
}

// BuildCheckResult evaluates the revenue trend against the anomaly budget.
func BuildCheckResult(revenue schema.RevenueTrendResult, maxAnomalies int) schema.CheckResult {
	var anomalous []schema.MonthlyRevenuePoint
	for _, p := range revenue.Points {
		if p.Anomaly == schema.AnomalyValue {
			anomalous = append(anomalous, p)
		}
	}

	return schema.CheckResult{
		Passed:          len(anomalous) <= maxAnomalies,
		MaxAnomalies:    maxAnomalies,
		TotalMonths:     len(revenue.Points),
		AnomalousMonths: anomalous,
		Mean:            revenue.Mean,
		StdDev:          revenue.StdDev,
	}
}

// printCheckResult prints the check result in a concise format suitable for CI/CD.
func printCheckResult(result *schema.CheckResult, duration time.Duration) {
	fmt.Println("Revenue Health Check Results:")
	fmt.Printf("  Months:       %d\n", result.TotalMonths)
	fmt.Printf("  Mean:         %.2f\n", result.Mean)
	fmt.Printf("  Std Dev:      %.2f\n", result.StdDev)
	fmt.Printf("  Budget:       %d anomalous month(s)\n", result.MaxAnomalies)
	fmt.Println()

	fmt.Printf("Checked %d months in %v\n\n", result.TotalMonths, duration)

	if result.Passed {
		fmt.Printf("✅ Revenue trend within budget (%d anomalous of %d months)\n", len(result.AnomalousMonths), result.TotalMonths)
		return
	}

	fmt.Printf("❌ Health check failed: %d anomalous month(s) found\n\n", len(result.AnomalousMonths))

	// Show top 5 offenders, with "+X more" if needed
	maxToShow := 5
	for i, p := range result.AnomalousMonths {
		if i >= maxToShow {
			fmt.Printf("  ... and %d more\n", len(result.AnomalousMonths)-maxToShow)
			break
		}
		fmt.Printf("  - %s (revenue: %.2f, z-score: %.2f)\n", p.Month.Format("2006-01"), p.TotalAmount, p.ZScore)
	}
	fmt.Println()
}
