package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rushiraj-gohil/bizdash/internal/contract"
	"github.com/rushiraj-gohil/bizdash/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRevenueResult() schema.RevenueTrendResult {
	return schema.RevenueTrendResult{
		Points: []schema.MonthlyRevenuePoint{
			{
				Month:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				TotalAmount: 1250.50,
				ZScore:      -0.35,
				Anomaly:     schema.NormalValue,
			},
			{
				Month:       time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
				TotalAmount: 9800.00,
				ZScore:      2.41,
				Anomaly:     schema.AnomalyValue,
			},
		},
		Mean:   5525.25,
		StdDev: 4274.75,
	}
}

func TestWriteRevenueTable(t *testing.T) {
	cfg := &contract.Config{
		Output:       schema.TextOut,
		Precision:    2,
		UseColors:    false,
		Width:        120,
		CacheBackend: schema.SQLiteBackend,
	}
	fmtFloat, _ := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	err := writeRevenueTable(sampleRevenueResult(), cfg, fmtFloat, 100*time.Millisecond, &buf)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "2024-01")
	assert.Contains(t, output, "1250.50")
	assert.Contains(t, output, "2024-02")
	assert.Contains(t, output, "9800.00")
	assert.Contains(t, output, "Anomaly")
	assert.Contains(t, output, "Normal")
	assert.Contains(t, output, "Showing 2 months")
	assert.Contains(t, output, "anomalies: 1")
	assert.Contains(t, output, "Analysis completed in 100ms")
	assert.Contains(t, output, "sqlite")
}

func TestPrintRevenueResultsCSV(t *testing.T) {
	path := t.TempDir() + "/revenue.csv"
	cfg := &contract.Config{
		Output:     schema.CSVOut,
		Precision:  1,
		OutputFile: path,
	}

	require.NoError(t, PrintRevenueResults(sampleRevenueResult(), cfg, time.Second))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(raw)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"month", "total_amount", "z_score", "anomaly"}, records[0])
	assert.Equal(t, []string{"2024-01", "1250.5", "-0.3500", "Normal"}, records[1])
	assert.Equal(t, []string{"2024-02", "9800.0", "2.4100", "Anomaly"}, records[2])
}

func TestPrintRevenueResultsJSON(t *testing.T) {
	path := t.TempDir() + "/revenue.json"
	cfg := &contract.Config{
		Output:     schema.JSONOut,
		Precision:  1,
		OutputFile: path,
	}

	require.NoError(t, PrintRevenueResults(sampleRevenueResult(), cfg, time.Second))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded schema.RevenueTrendResult
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Len(t, decoded.Points, 2)
	assert.Equal(t, 5525.25, decoded.Mean)
	assert.Equal(t, schema.AnomalyValue, decoded.Points[1].Anomaly)
}

func TestPrintRevenueResultsParquetRequiresFile(t *testing.T) {
	path := t.TempDir() + "/revenue.parquet"
	cfg := &contract.Config{
		Output:     schema.ParquetOut,
		Precision:  1,
		OutputFile: path,
	}

	require.NoError(t, PrintRevenueResults(sampleRevenueResult(), cfg, time.Second))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWriteRevenueTableEmpty(t *testing.T) {
	cfg := &contract.Config{Output: schema.TextOut, Precision: 1, Width: 80, CacheBackend: schema.NoneBackend}
	fmtFloat, _ := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	err := writeRevenueTable(schema.RevenueTrendResult{}, cfg, fmtFloat, time.Millisecond, &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Showing 0 months")
}

func TestCreateFormatters(t *testing.T) {
	fmtFloat, intFmt := createFormatters(1)
	assert.Equal(t, "3.5", fmtFloat(3.456))
	assert.Equal(t, "%d", intFmt)

	fmtFloat2, _ := createFormatters(2)
	assert.Equal(t, "3.46", fmtFloat2(3.456))
}

func TestWriteWithFileStdout(t *testing.T) {
	// Writing with no output file goes to stdout and never errors on close.
	err := writeWithFile("", func(w io.Writer) error {
		_, werr := w.Write([]byte(""))
		return werr
	}, "noop")
	assert.NoError(t, err)
}

func TestTruncateID(t *testing.T) {
	assert.Equal(t, "short", truncateID("short", 12))
	assert.Equal(t, "exactly12ch", truncateID("exactly12ch", 11))
	got := truncateID("a-very-long-customer-identifier", 12)
	assert.True(t, strings.HasSuffix(got, "…"))
}

func TestGetMaxCustomerIDWidth(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  int
	}{
		{"narrow override clamps to minimum", 40, 12},
		{"wide override clamps to maximum", 200, 40},
		{"mid-range override", 80, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &contract.Config{Width: tt.width}
			assert.Equal(t, tt.want, GetMaxCustomerIDWidth(cfg))
		})
	}
}
