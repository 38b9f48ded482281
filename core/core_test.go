package core

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/rushiraj-gohil/bizdash/internal/contract"
	"github.com/rushiraj-gohil/bizdash/internal/iocache"
	"github.com/rushiraj-gohil/bizdash/internal/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// buildTestArchive assembles an in-memory dataset archive with a small but
// fully joined set of rows.
func buildTestArchive(t *testing.T) []byte {
	t.Helper()

	members := map[string]string{
		"cleaned_transactions.csv": "transaction_id,customer_id,created_at,payment_status,total_amount\n" +
			"t1,c1,2024-01-10 08:00:00,paid,120.50\n" +
			"t2,c1,2024-02-05 09:30:00,paid,99.00\n" +
			"t3,c2,2024-02-20 14:00:00,refunded,45.00\n",
		"cleaned_sessions.csv": "customer_id,session_start,session_end\n" +
			"c1,2024-01-11 10:00:00,2024-01-11 11:00:00\n" +
			"c1,2024-02-12 10:00:00,2024-02-12 10:45:00\n",
		"cleaned_customers.csv": "customer_id,signup_date\n" +
			"c1,2024-01-02\n" +
			"c2,2024-02-14\n",
		"cleaned_support_tickets.csv": "customer_id,created_at,resolved_at\n" +
			"c2,2024-02-21 09:00:00,2024-02-21 17:00:00\n",
		"cleaned_products.csv": "product_id,name,category,price\n" +
			"p1,Widget,gadgets,9.99\n",
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range members {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestGetResultsShareOneFetch(t *testing.T) {
	archive := buildTestArchive(t)
	url := "https://example.com/cleaned_data.zip"

	fetcher := &contract.MockFetcher{}
	fetcher.On("Fetch", mock.Anything, url).Return(archive, nil).Once()

	loader.Manager.Reset()
	loader.Manager.SetFetcher(fetcher)
	defer loader.Manager.SetFetcher(nil)
	defer loader.Manager.Reset()

	ctx := context.Background()
	cfg := &contract.Config{ArchiveURL: url}

	revenue, err := GetRevenueTrendResult(ctx, cfg, nil)
	require.NoError(t, err)
	require.Len(t, revenue.Points, 2)
	assert.Equal(t, 120.50, revenue.Points[0].TotalAmount)
	assert.Equal(t, 99.00, revenue.Points[1].TotalAmount)

	retention, err := GetRetentionMatrixResult(ctx, cfg, nil)
	require.NoError(t, err)
	require.Len(t, retention.Cohorts, 1)
	assert.Equal(t, 1, retention.Cohorts[0].CohortSize)
	assert.Equal(t, 100.0, retention.Cohorts[0].Rates[0])
	assert.Equal(t, 100.0, retention.Cohorts[0].Rates[1])

	support, err := GetSupportPaymentResult(ctx, cfg, nil)
	require.NoError(t, err)
	require.Len(t, support.Rows, 1)
	assert.Equal(t, "c2", support.Rows[0].CustomerID)
	assert.Equal(t, 1, support.Rows[0].TicketCount)
	assert.Zero(t, support.Rows[0].PaidTx)
	assert.Equal(t, 1, support.Rows[0].Refunded)

	// The memo means all three analyzers share a single download.
	fetcher.AssertNumberOfCalls(t, "Fetch", 1)
}

func TestGetResultsFetchError(t *testing.T) {
	url := "https://example.com/missing.zip"

	fetcher := &contract.MockFetcher{}
	fetcher.On("Fetch", mock.Anything, url).Return(nil, assert.AnError)

	loader.Manager.Reset()
	loader.Manager.SetFetcher(fetcher)
	defer loader.Manager.SetFetcher(nil)
	defer loader.Manager.Reset()

	cfg := &contract.Config{ArchiveURL: url}
	_, err := GetRevenueTrendResult(context.Background(), cfg, nil)
	assert.Error(t, err)
}

func TestRecordHistory(t *testing.T) {
	cfg := &contract.Config{ArchiveURL: "https://example.com/data.zip"}
	start := time.Now()

	t.Run("records all sections", func(t *testing.T) {
		store := &iocache.MockHistoryStore{}
		store.On("BeginRun", mock.Anything, mock.Anything).Return(int64(7), nil).Once()
		store.On("RecordSection", int64(7), RevenueSection, 6, 1).Return(nil).Once()
		store.On("RecordSection", int64(7), RetentionSection, 2, 0).Return(nil).Once()
		store.On("EndRun", int64(7), mock.Anything).Return(nil).Once()

		mgr := &iocache.MockCacheManager{}
		mgr.On("GetHistoryStore").Return(store)

		recordHistory(mgr, cfg, start, []sectionOutcome{
			{RevenueSection, 6, 1},
			{RetentionSection, 2, 0},
		})

		store.AssertExpectations(t)
	})

	t.Run("nil manager is a no-op", func(t *testing.T) {
		assert.NotPanics(t, func() {
			recordHistory(nil, cfg, start, []sectionOutcome{{RevenueSection, 1, 0}})
		})
	})

	t.Run("begin failure skips sections", func(t *testing.T) {
		store := &iocache.MockHistoryStore{}
		store.On("BeginRun", mock.Anything, mock.Anything).Return(int64(0), assert.AnError).Once()

		mgr := &iocache.MockCacheManager{}
		mgr.On("GetHistoryStore").Return(store)

		recordHistory(mgr, cfg, start, []sectionOutcome{{RevenueSection, 1, 0}})

		store.AssertExpectations(t)
		store.AssertNotCalled(t, "RecordSection", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		store.AssertNotCalled(t, "EndRun", mock.Anything, mock.Anything)
	})
}
