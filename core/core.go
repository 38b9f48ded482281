// Package core has core logic for the dashboard analytics pipeline.
package core

import (
	"context"
	"fmt"
	"time"

	"github.com/rushiraj-gohil/bizdash/internal/contract"
	"github.com/rushiraj-gohil/bizdash/internal/loader"
	"github.com/rushiraj-gohil/bizdash/internal/outwriter"
	"github.com/rushiraj-gohil/bizdash/schema"
)

// Section names recorded in the history store.
const (
	RevenueSection   = "revenue_trend"
	RetentionSection = "cohort_retention"
	SupportSection   = "support_payment"
)

// sectionOutcome captures what one analyzer produced, for history tracking.
type sectionOutcome struct {
	name      string
	rows      int
	anomalies int
}

// GetRevenueTrendResult loads the dataset and computes the revenue trend.
// Exposed for the MCP server and check command.
func GetRevenueTrendResult(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) (schema.RevenueTrendResult, error) {
	ds, err := loader.Manager.Load(ctx, cfg, mgr)
	if err != nil {
		return schema.RevenueTrendResult{}, err
	}
	return BuildRevenueTrend(ds.Transactions), nil
}

// GetRetentionMatrixResult loads the dataset and computes the retention matrix.
func GetRetentionMatrixResult(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) (schema.RetentionMatrix, error) {
	ds, err := loader.Manager.Load(ctx, cfg, mgr)
	if err != nil {
		return schema.RetentionMatrix{}, err
	}
	return BuildRetentionMatrix(ds.Customers, ds.Sessions), nil
}

// GetSupportPaymentResult loads the dataset and computes the support summary.
func GetSupportPaymentResult(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) (schema.SupportPaymentResult, error) {
	ds, err := loader.Manager.Load(ctx, cfg, mgr)
	if err != nil {
		return schema.SupportPaymentResult{}, err
	}
	return BuildSupportPaymentSummary(ds.Tickets, ds.Transactions), nil
}

// ExecuteRevenueTrend runs the revenue anomaly analysis and prints results.
// It serves as the main entry point for the 'revenue' command.
func ExecuteRevenueTrend(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	start := time.Now()
	logSectionHeader(cfg, "Monthly Revenue Trend with Anomaly Detection")
	result, err := GetRevenueTrendResult(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	recordHistory(mgr, cfg, start, []sectionOutcome{
		{RevenueSection, len(result.Points), result.AnomalyCount()},
	})
	return outwriter.PrintRevenueResults(result, cfg, time.Since(start))
}

// ExecuteCohortRetention runs the cohort retention analysis and prints results.
// It serves as the main entry point for the 'retention' command.
func ExecuteCohortRetention(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	start := time.Now()
	logSectionHeader(cfg, "Cohort Retention (0-5 Months)")
	result, err := GetRetentionMatrixResult(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	recordHistory(mgr, cfg, start, []sectionOutcome{
		{RetentionSection, len(result.Cohorts), 0},
	})
	return outwriter.PrintRetentionResults(result, cfg, time.Since(start))
}

// ExecuteSupportPayment runs the support-vs-payment analysis and prints results.
// It serves as the main entry point for the 'support' command.
func ExecuteSupportPayment(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	start := time.Now()
	logSectionHeader(cfg, "Support Ticket Volume vs Payment Outcomes")
	result, err := GetSupportPaymentResult(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	recordHistory(mgr, cfg, start, []sectionOutcome{
		{SupportSection, len(result.Rows), 0},
	})
	return outwriter.PrintSupportResults(result, cfg, time.Since(start))
}

// ExecuteDashboard runs all three analyses against a single dataset load and
// prints every section. It serves as the main entry point for the 'dashboard'
// command.
func ExecuteDashboard(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	start := time.Now()

	ds, err := loader.Manager.Load(ctx, cfg, mgr)
	if err != nil {
		return err
	}

	revenue := BuildRevenueTrend(ds.Transactions)
	retention := BuildRetentionMatrix(ds.Customers, ds.Sessions)
	support := BuildSupportPaymentSummary(ds.Tickets, ds.Transactions)

	recordHistory(mgr, cfg, start, []sectionOutcome{
		{RevenueSection, len(revenue.Points), revenue.AnomalyCount()},
		{RetentionSection, len(retention.Cohorts), 0},
		{SupportSection, len(support.Rows), 0},
	})

	duration := time.Since(start)

	logSectionHeader(cfg, "Monthly Revenue Trend with Anomaly Detection")
	if err := outwriter.PrintRevenueResults(revenue, cfg, duration); err != nil {
		return err
	}
	logSectionHeader(cfg, "Cohort Retention (0-5 Months)")
	if err := outwriter.PrintRetentionResults(retention, cfg, duration); err != nil {
		return err
	}
	logSectionHeader(cfg, "Support Ticket Volume vs Payment Outcomes")
	return outwriter.PrintSupportResults(support, cfg, duration)
}

// logSectionHeader prints a dashboard section banner for human-readable output.
// Structured output modes stay clean for downstream consumers.
func logSectionHeader(cfg *contract.Config, title string) {
	if cfg.Output != schema.TextOut {
		return
	}
	fmt.Printf("\n📊 %s\n", title)
}

// recordHistory persists the run outcome when a history store is configured.
// History tracking is best-effort and never fails the analysis.
func recordHistory(mgr contract.CacheManager, cfg *contract.Config, start time.Time, sections []sectionOutcome) {
	if mgr == nil {
		return
	}
	store := mgr.GetHistoryStore()
	if store == nil {
		return
	}

	runID, err := store.BeginRun(start, cfg.Params())
	if err != nil {
		contract.LogWarn("could not begin history run", err)
		return
	}
	for _, s := range sections {
		if err := store.RecordSection(runID, s.name, s.rows, s.anomalies); err != nil {
			contract.LogWarn("could not record history section", err)
		}
	}
	if err := store.EndRun(runID, time.Now()); err != nil {
		contract.LogWarn("could not end history run", err)
	}
}
