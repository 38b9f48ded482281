package schema

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidOutputModes(t *testing.T) {
	for _, mode := range []OutputMode{CSVOut, TextOut, JSONOut, ParquetOut} {
		_, ok := ValidOutputModes[mode]
		assert.True(t, ok, "mode %s should be valid", mode)
	}

	_, ok := ValidOutputModes[OutputMode("xml")]
	assert.False(t, ok)
}

func TestValidDatabaseBackends(t *testing.T) {
	for _, backend := range []DatabaseBackend{SQLiteBackend, MySQLBackend, PostgreSQLBackend, NoneBackend} {
		_, ok := ValidDatabaseBackends[backend]
		assert.True(t, ok, "backend %s should be valid", backend)
	}

	_, ok := ValidDatabaseBackends[DatabaseBackend("redis")]
	assert.False(t, ok)
}

func TestRevenueTrendResultAnomalyCount(t *testing.T) {
	result := RevenueTrendResult{
		Points: []MonthlyRevenuePoint{
			{Anomaly: NormalValue},
			{Anomaly: AnomalyValue},
			{Anomaly: NormalValue},
			{Anomaly: AnomalyValue},
		},
	}
	assert.Equal(t, 2, result.AnomalyCount())

	assert.Zero(t, RevenueTrendResult{}.AnomalyCount())
}

func TestCohortRowRatesSpanTrackedWindow(t *testing.T) {
	var row CohortRow
	assert.Len(t, row.Rates, MaxRetentionOffset+1)
}

func TestMonthlyRevenuePointJSON(t *testing.T) {
	p := MonthlyRevenuePoint{
		Month:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		TotalAmount: 1234.5,
		ZScore:      -1.25,
		Anomaly:     NormalValue,
	}

	raw, err := json.Marshal(p)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "month")
	assert.Contains(t, decoded, "total_amount")
	assert.Contains(t, decoded, "z_score")
	assert.Equal(t, "Normal", decoded["anomaly"])
}

func TestSupportPaymentRowJSONKeys(t *testing.T) {
	raw, err := json.Marshal(SupportPaymentRow{CustomerID: "c1"})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	for _, key := range []string{"customer_id", "ticket_count", "paid_tx", "refunded", "charged_back"} {
		assert.Contains(t, decoded, key)
	}
}
