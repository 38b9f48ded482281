package iocache

import (
	"errors"
	"fmt"

	"github.com/rushiraj-gohil/bizdash/internal/parquet"
)

// ExecuteHistoryExport performs the actual export of run history to Parquet files.
func ExecuteHistoryExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the history store
	store := Manager.GetHistoryStore()

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get history status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no run history found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total runs: %d\n", status.TotalRuns)
	fmt.Printf("Total section records: %d\n", status.TableSizes[runSectionsTable])

	// Retrieve all runs
	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve runs: %w", err)
	}

	// Retrieve all analyzer sections
	sections, err := store.GetAllSections()
	if err != nil {
		return fmt.Errorf("failed to retrieve run sections: %w", err)
	}

	// Convert to Parquet format
	parquetRuns := parquet.ConvertHistoryRuns(runs)
	parquetSections := parquet.ConvertHistorySections(sections)

	// Write runs to Parquet
	runsFile := outputFile + ".runs.parquet"
	if err := parquet.WriteRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write runs: %w", err)
	}
	fmt.Printf("Exported %d runs to: %s\n", len(parquetRuns), runsFile)

	// Write run sections to Parquet
	sectionsFile := outputFile + ".run_sections.parquet"
	if err := parquet.WriteRunSectionsParquet(parquetSections, sectionsFile); err != nil {
		return fmt.Errorf("failed to write run sections: %w", err)
	}
	fmt.Printf("Exported %d section records to: %s\n", len(parquetSections), sectionsFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
