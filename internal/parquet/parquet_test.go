package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/rushiraj-gohil/bizdash/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	s := parquet.SchemaOf(new(Run))
	require.NotNil(t, s)

	expectedColumns := []string{
		"run_id",
		"start_time",
		"end_time",
		"run_duration_ms",
		"config_params",
	}
	for _, colName := range expectedColumns {
		_, ok := s.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
	}
}

func TestRunSectionStructTags(t *testing.T) {
	s := parquet.SchemaOf(new(RunSection))
	require.NotNil(t, s)

	expectedColumns := []string{
		"run_id",
		"section",
		"run_time",
		"row_count",
		"anomaly_count",
	}
	for _, colName := range expectedColumns {
		_, ok := s.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
	}
}

func TestDerivedRowStructTags(t *testing.T) {
	for name, columns := range map[string][]string{
		"revenue":   parquetColumns(parquet.SchemaOf(new(RevenuePoint)), "month", "total_amount", "z_score", "anomaly"),
		"retention": parquetColumns(parquet.SchemaOf(new(RetentionCell)), "cohort_month", "cohort_size", "month_number", "retention_rate"),
		"support":   parquetColumns(parquet.SchemaOf(new(SupportRow)), "customer_id", "ticket_count", "paid_tx", "refunded", "charged_back"),
	} {
		assert.Empty(t, columns, "missing columns for %s schema: %v", name, columns)
	}
}

// parquetColumns returns the requested columns that are absent from the schema.
func parquetColumns(s *parquet.Schema, names ...string) []string {
	var missing []string
	for _, name := range names {
		if _, ok := s.Lookup(name); !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

func TestWriteRunsParquet(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "runs.parquet")

	endTime := time.Date(2024, 6, 1, 12, 0, 5, 0, time.UTC)
	durationMs := int32(5000)
	configParams := `{"limit":25,"output":"text"}`
	data := []Run{
		{
			RunID:        1,
			StartTime:    time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
			EndTime:      &endTime,
			DurationMs:   &durationMs,
			ConfigParams: &configParams,
		},
		{
			// An in-flight run keeps its nullable fields empty.
			RunID:     2,
			StartTime: time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC),
		},
	}

	require.NoError(t, WriteRunsParquet(data, outputPath))

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	// Read back and verify data
	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	reader := parquet.NewGenericReader[Run](file)
	defer func() { _ = reader.Close() }()

	readData := make([]Run, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	require.Equal(t, len(data), n)

	assert.Equal(t, int64(1), readData[0].RunID)
	require.NotNil(t, readData[0].EndTime)
	assert.WithinDuration(t, endTime, *readData[0].EndTime, time.Nanosecond)
	require.NotNil(t, readData[0].DurationMs)
	assert.Equal(t, durationMs, *readData[0].DurationMs)
	require.NotNil(t, readData[0].ConfigParams)
	assert.Equal(t, configParams, *readData[0].ConfigParams)

	assert.Equal(t, int64(2), readData[1].RunID)
	assert.Nil(t, readData[1].EndTime)
	assert.Nil(t, readData[1].DurationMs)
	assert.Nil(t, readData[1].ConfigParams)
}

func TestWriteRunSectionsParquet(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "sections.parquet")

	data := []RunSection{
		{RunID: 1, Section: "revenue_trend", RunTime: time.Now().UTC(), RowCount: 12, AnomalyCount: 1},
		{RunID: 1, Section: "support_payment", RunTime: time.Now().UTC(), RowCount: 40, AnomalyCount: 0},
	}

	require.NoError(t, WriteRunSectionsParquet(data, outputPath))

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	reader := parquet.NewGenericReader[RunSection](file)
	defer func() { _ = reader.Close() }()

	readData := make([]RunSection, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	require.Equal(t, len(data), n)
	assert.Equal(t, "revenue_trend", readData[0].Section)
	assert.Equal(t, int32(12), readData[0].RowCount)
	assert.Equal(t, int32(1), readData[0].AnomalyCount)
}

func TestWriteRunsParquetEmptyData(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "empty_runs.parquet")

	require.NoError(t, WriteRunsParquet([]Run{}, outputPath))

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0), "even an empty file carries the schema footer")
}

func TestConvertHistoryRuns(t *testing.T) {
	endTime := time.Now()
	durationMs := int32(1234)
	params := `{"refresh":false}`

	records := []schema.HistoryRun{
		{RunID: 9, StartTime: endTime.Add(-time.Second), EndTime: &endTime, DurationMs: &durationMs, ConfigParams: &params},
	}

	out := ConvertHistoryRuns(records)
	require.Len(t, out, 1)
	assert.Equal(t, int64(9), out[0].RunID)
	assert.Equal(t, &endTime, out[0].EndTime)
	assert.Equal(t, &durationMs, out[0].DurationMs)
	assert.Equal(t, &params, out[0].ConfigParams)
}

func TestConvertRevenuePoints(t *testing.T) {
	result := schema.RevenueTrendResult{
		Points: []schema.MonthlyRevenuePoint{
			{Month: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), TotalAmount: 100, ZScore: -0.5, Anomaly: schema.NormalValue},
			{Month: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), TotalAmount: 900, ZScore: 2.5, Anomaly: schema.AnomalyValue},
		},
	}

	out := ConvertRevenuePoints(result)
	require.Len(t, out, 2)
	assert.Equal(t, "Normal", out[0].Anomaly)
	assert.Equal(t, "Anomaly", out[1].Anomaly)
	assert.Equal(t, 900.0, out[1].TotalAmount)
}

func TestConvertRetentionCells(t *testing.T) {
	row := schema.CohortRow{
		CohortMonth: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		CohortSize:  10,
	}
	row.Rates[0] = 100
	row.Rates[2] = 30

	out := ConvertRetentionCells(schema.RetentionMatrix{Cohorts: []schema.CohortRow{row}})
	require.Len(t, out, schema.MaxRetentionOffset+1, "one cell per offset, zeros included")

	assert.Equal(t, int32(0), out[0].MonthNumber)
	assert.Equal(t, 100.0, out[0].Rate)
	assert.Equal(t, int32(2), out[2].MonthNumber)
	assert.Equal(t, 30.0, out[2].Rate)
	assert.Equal(t, 0.0, out[1].Rate)
	assert.Equal(t, int32(10), out[3].CohortSize)
}

func TestConvertSupportRows(t *testing.T) {
	result := schema.SupportPaymentResult{
		Rows: []schema.SupportPaymentRow{
			{CustomerID: "c1", TicketCount: 3, PaidTx: 7, Refunded: 1, ChargedBack: 2},
		},
	}

	out := ConvertSupportRows(result)
	require.Len(t, out, 1)
	assert.Equal(t, "c1", out[0].CustomerID)
	assert.Equal(t, int32(3), out[0].TicketCount)
	assert.Equal(t, int32(7), out[0].PaidTx)
	assert.Equal(t, int32(2), out[0].ChargedBack)
}
