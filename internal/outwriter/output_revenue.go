package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/rushiraj-gohil/bizdash/internal/contract"
	"github.com/rushiraj-gohil/bizdash/internal/parquet"
	"github.com/rushiraj-gohil/bizdash/schema"
)

// PrintRevenueResults outputs the revenue trend, dispatching based on the output format configured.
func PrintRevenueResults(result schema.RevenueTrendResult, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForRevenue(result, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForRevenue(result, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := parquet.WriteRevenuePointsParquet(parquet.ConvertRevenuePoints(result), cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRevenueTable(result, cfg, fmtFloat, duration, w)
		}, "Wrote revenue table")
	}
	return nil
}

// printJSONResultsForRevenue handles opening the file and calling the JSON writer.
func printJSONResultsForRevenue(result schema.RevenueTrendResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForRevenue(w, result)
	}, "Wrote JSON revenue results")
}

// printCSVResultsForRevenue handles opening the file and calling the CSV writer.
func printCSVResultsForRevenue(result schema.RevenueTrendResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"month", "total_amount", "z_score", "anomaly"}
		return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
			return writeCSVRowsForRevenue(cw, result, fmtFloat)
		})
	}, "Wrote CSV revenue results")
}

// writeRevenueTable generates and writes the human-readable table.
func writeRevenueTable(result schema.RevenueTrendResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	table.Header([]string{"Month", "Revenue", "Z-Score", "Status"})

	// 2. Configure Alignment
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	var data [][]string
	for _, p := range result.Points {
		row := []string{
			p.Month.Format(monthFormat),
			fmtFloat(p.TotalAmount),
			fmt.Sprintf("%.2f", p.ZScore),
			contract.GetAnomalyLabel(p.Anomaly, cfg.UseColors),
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// Compute summary stats
	anomalies := result.AnomalyCount()
	if _, err := fmt.Fprintf(writer, "Showing %d months (mean: %s, std dev: %s, anomalies: %d)\n",
		len(result.Points), fmtFloat(result.Mean), fmtFloat(result.StdDev), anomalies); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v. Cache backend: %s\n", duration, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVRowsForRevenue writes the revenue trend rows in CSV format.
func writeCSVRowsForRevenue(w *csv.Writer, result schema.RevenueTrendResult, fmtFloat func(float64) string) error {
	for _, p := range result.Points {
		rec := []string{
			p.Month.Format(monthFormat),
			fmtFloat(p.TotalAmount),
			fmt.Sprintf("%.4f", p.ZScore),
			string(p.Anomaly),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONResultsForRevenue writes the revenue trend in JSON format.
func writeJSONResultsForRevenue(w io.Writer, result schema.RevenueTrendResult) error {
	return writeJSON(w, result)
}
