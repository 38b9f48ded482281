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

// PrintSupportResults outputs the support-vs-payment summary, dispatching based on the output format configured.
// Structured outputs (CSV, JSON, Parquet) always carry the full row set;
// the table view is capped at cfg.ResultLimit rows to stay readable.
func PrintSupportResults(result schema.SupportPaymentResult, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	_, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForSupport(result, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForSupport(result, cfg, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := parquet.WriteSupportRowsParquet(parquet.ConvertSupportRows(result), cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSupportTable(result, cfg, intFmt, duration, w)
		}, "Wrote support table")
	}
	return nil
}

// printJSONResultsForSupport handles opening the file and calling the JSON writer.
func printJSONResultsForSupport(result schema.SupportPaymentResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, result)
	}, "Wrote JSON support results")
}

// printCSVResultsForSupport handles opening the file and calling the CSV writer.
func printCSVResultsForSupport(result schema.SupportPaymentResult, cfg *contract.Config, intFmt string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"customer_id", "ticket_count", "paid_tx", "refunded", "charged_back"}
		return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
			for _, r := range result.Rows {
				rec := []string{
					r.CustomerID,
					fmt.Sprintf(intFmt, r.TicketCount),
					fmt.Sprintf(intFmt, r.PaidTx),
					fmt.Sprintf(intFmt, r.Refunded),
					fmt.Sprintf(intFmt, r.ChargedBack),
				}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV support results")
}

// writeSupportTable generates and writes the human-readable table.
func writeSupportTable(result schema.SupportPaymentResult, cfg *contract.Config, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	table.Header([]string{"Rank", "Customer", "Tickets", "Paid", "Refunded", "Charged Back"})

	// 2. Configure Alignment
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows, capped at the configured result limit
	maxIDWidth := GetMaxCustomerIDWidth(cfg)
	shown := result.Rows
	if len(shown) > cfg.ResultLimit {
		shown = shown[:cfg.ResultLimit]
	}
	var data [][]string
	for i, r := range shown {
		row := []string{
			strconv.Itoa(i + 1),
			truncateID(r.CustomerID, maxIDWidth),
			fmt.Sprintf(intFmt, r.TicketCount),
			fmt.Sprintf(intFmt, r.PaidTx),
			fmt.Sprintf(intFmt, r.Refunded),
			contract.GetChargebackCell(fmt.Sprintf(intFmt, r.ChargedBack), r.ChargedBack, cfg.UseColors),
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
	totalTickets := 0
	totalChargebacks := 0
	for _, r := range result.Rows {
		totalTickets += r.TicketCount
		totalChargebacks += r.ChargedBack
	}
	if _, err := fmt.Fprintf(writer, "Showing %d of %d customers (total tickets: %d, total chargebacks: %d)\n",
		len(shown), len(result.Rows), totalTickets, totalChargebacks); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v. Cache backend: %s\n", duration, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}
