package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/rushiraj-gohil/bizdash/internal/contract"
	"github.com/rushiraj-gohil/bizdash/internal/parquet"
	"github.com/rushiraj-gohil/bizdash/schema"
)

// PrintRetentionResults outputs the retention matrix, dispatching based on the output format configured.
func PrintRetentionResults(result schema.RetentionMatrix, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForRetention(result, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForRetention(result, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := parquet.WriteRetentionCellsParquet(parquet.ConvertRetentionCells(result), cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRetentionTable(result, cfg, fmtFloat, duration, w)
		}, "Wrote retention table")
	}
	return nil
}

// printJSONResultsForRetention handles opening the file and calling the JSON writer.
func printJSONResultsForRetention(result schema.RetentionMatrix, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, result)
	}, "Wrote JSON retention results")
}

// printCSVResultsForRetention handles opening the file and calling the CSV writer.
// One CSV row per cohort/offset cell so the data stays tidy for downstream tools.
func printCSVResultsForRetention(result schema.RetentionMatrix, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"cohort_month", "cohort_size", "month_number", "retention_rate"}
		return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
			for _, c := range result.Cohorts {
				for m, rate := range c.Rates {
					rec := []string{
						c.CohortMonth.Format(monthFormat),
						strconv.Itoa(c.CohortSize),
						strconv.Itoa(m),
						fmtFloat(rate),
					}
					if err := cw.Write(rec); err != nil {
						return err
					}
				}
			}
			return nil
		})
	}, "Wrote CSV retention results")
}

// writeRetentionTable generates and writes the heatmap-style table: one row per
// cohort, one column per month offset, color intensity proportional to the rate.
func writeRetentionTable(result schema.RetentionMatrix, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Cohort", "Size"}
	for m := 0; m <= schema.MaxRetentionOffset; m++ {
		headers = append(headers, fmt.Sprintf("M%d", m))
	}
	table.Header(headers)

	// 2. Configure Alignment
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	var data [][]string
	for _, c := range result.Cohorts {
		row := []string{
			c.CohortMonth.Format(monthFormat),
			strconv.Itoa(c.CohortSize),
		}
		for _, rate := range c.Rates {
			formatted := fmtFloat(rate) + "%"
			row = append(row, contract.GetRateCell(formatted, rate, cfg.UseColors))
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

	if _, err := fmt.Fprintf(writer, "Showing %d cohorts across offsets 0-%d\n", len(result.Cohorts), schema.MaxRetentionOffset); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v. Cache backend: %s\n", duration, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}
