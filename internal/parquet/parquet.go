// Package parquet provides data structures and functions for exporting bizdash
// analysis data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/rushiraj-gohil/bizdash/schema"
)

// Run represents a single dashboard analysis run with metadata.
// This struct maps to the bizdash_runs database table.
type Run struct {
	// RunID is the unique identifier for this analysis run
	RunID int64 `parquet:"run_id,snappy"`

	// StartTime is when the run began
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// DurationMs is the duration of the run in milliseconds (nullable)
	DurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// RunSection represents one analyzer's outcome within a run.
// This struct maps to the bizdash_run_sections database table.
type RunSection struct {
	// RunID references the parent run
	RunID int64 `parquet:"run_id,snappy"`

	// Section names the analyzer (revenue_trend, cohort_retention, support_payment)
	Section string `parquet:"section,snappy"`

	// RunTime is when this section was recorded
	RunTime time.Time `parquet:"run_time,snappy"`

	// RowCount is the number of derived rows the analyzer produced
	RowCount int32 `parquet:"row_count,snappy"`

	// AnomalyCount is the number of anomalous rows (revenue analyzer only)
	AnomalyCount int32 `parquet:"anomaly_count,snappy"`
}

// RevenuePoint is one month of the revenue trend for Parquet output.
type RevenuePoint struct {
	Month       time.Time `parquet:"month,snappy"`
	TotalAmount float64   `parquet:"total_amount,snappy"`
	ZScore      float64   `parquet:"z_score,snappy"`
	Anomaly     string    `parquet:"anomaly,snappy"`
}

// RetentionCell is one cohort/offset cell of the retention matrix.
type RetentionCell struct {
	CohortMonth time.Time `parquet:"cohort_month,snappy"`
	CohortSize  int32     `parquet:"cohort_size,snappy"`
	MonthNumber int32     `parquet:"month_number,snappy"`
	Rate        float64   `parquet:"retention_rate,snappy"`
}

// SupportRow is one customer of the support-vs-payment summary.
type SupportRow struct {
	CustomerID  string `parquet:"customer_id,snappy"`
	TicketCount int32  `parquet:"ticket_count,snappy"`
	PaidTx      int32  `parquet:"paid_tx,snappy"`
	Refunded    int32  `parquet:"refunded,snappy"`
	ChargedBack int32  `parquet:"charged_back,snappy"`
}

// writeParquet writes any slice of row structs to a Parquet file using
// struct schema inference.
func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteRunsParquet writes a slice of Run structs to a Parquet file.
func WriteRunsParquet(data []Run, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteRunSectionsParquet writes a slice of RunSection structs to a Parquet file.
func WriteRunSectionsParquet(data []RunSection, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteRevenuePointsParquet writes the revenue trend to a Parquet file.
func WriteRevenuePointsParquet(data []RevenuePoint, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteRetentionCellsParquet writes the retention matrix to a Parquet file.
func WriteRetentionCellsParquet(data []RetentionCell, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteSupportRowsParquet writes the support summary to a Parquet file.
func WriteSupportRowsParquet(data []SupportRow, outputPath string) error {
	return writeParquet(data, outputPath)
}

// ConvertHistoryRuns converts database run records to Parquet rows.
func ConvertHistoryRuns(records []schema.HistoryRun) []Run {
	out := make([]Run, len(records))
	for i, r := range records {
		out[i] = Run{
			RunID:        r.RunID,
			StartTime:    r.StartTime,
			EndTime:      r.EndTime,
			DurationMs:   r.DurationMs,
			ConfigParams: r.ConfigParams,
		}
	}
	return out
}

// ConvertHistorySections converts database section records to Parquet rows.
func ConvertHistorySections(records []schema.HistorySection) []RunSection {
	out := make([]RunSection, len(records))
	for i, s := range records {
		out[i] = RunSection{
			RunID:        s.RunID,
			Section:      s.Section,
			RunTime:      s.RunTime,
			RowCount:     s.RowCount,
			AnomalyCount: s.AnomalyCount,
		}
	}
	return out
}

// ConvertRevenuePoints converts a revenue trend result to Parquet rows.
func ConvertRevenuePoints(result schema.RevenueTrendResult) []RevenuePoint {
	out := make([]RevenuePoint, len(result.Points))
	for i, p := range result.Points {
		out[i] = RevenuePoint{
			Month:       p.Month,
			TotalAmount: p.TotalAmount,
			ZScore:      p.ZScore,
			Anomaly:     string(p.Anomaly),
		}
	}
	return out
}

// ConvertRetentionCells flattens a retention matrix to one row per
// cohort/offset cell.
func ConvertRetentionCells(result schema.RetentionMatrix) []RetentionCell {
	out := make([]RetentionCell, 0, len(result.Cohorts)*(schema.MaxRetentionOffset+1))
	for _, c := range result.Cohorts {
		for m, rate := range c.Rates {
			out = append(out, RetentionCell{
				CohortMonth: c.CohortMonth,
				CohortSize:  int32(c.CohortSize),
				MonthNumber: int32(m),
				Rate:        rate,
			})
		}
	}
	return out
}

// ConvertSupportRows converts a support-payment result to Parquet rows.
func ConvertSupportRows(result schema.SupportPaymentResult) []SupportRow {
	out := make([]SupportRow, len(result.Rows))
	for i, r := range result.Rows {
		out[i] = SupportRow{
			CustomerID:  r.CustomerID,
			TicketCount: int32(r.TicketCount),
			PaidTx:      int32(r.PaidTx),
			Refunded:    int32(r.Refunded),
			ChargedBack: int32(r.ChargedBack),
		}
	}
	return out
}
