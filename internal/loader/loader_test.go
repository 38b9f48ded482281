package loader

import (
	"archive/zip"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rushiraj-gohil/bizdash/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// defaultMembers is a minimal, fully valid archive payload.
var defaultMembers = map[string]string{
	transactionsMember: "transaction_id,customer_id,created_at,payment_status,total_amount\n" +
		"t1,c1,2024-01-10 08:00:00,paid,120.50\n" +
		"t2,c2,2024-01-12T09:30:00Z,refunded,45.00\n",
	sessionsMember: "customer_id,session_start,session_end\n" +
		"c1,2024-01-11 10:00:00,2024-01-11 11:00:00\n",
	customersMember: "customer_id,signup_date\n" +
		"c1,2024-01-02\n" +
		"c2,2023-12-20\n",
	ticketsMember: "customer_id,created_at,resolved_at\n" +
		"c2,2024-01-13 09:00:00,2024-01-13 17:00:00\n",
	productsMember: "product_id,name,category,price\n" +
		"p1,Widget,gadgets,9.99\n" +
		"p2,Gizmo,gadgets,19.99\n",
}

// buildArchive zips the given members, falling back to defaults for any
// member not overridden.
func buildArchive(t *testing.T, overrides map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range defaultMembers {
		if override, ok := overrides[name]; ok {
			content = override
		}
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestParseArchive(t *testing.T) {
	ds, err := ParseArchive(buildArchive(t, nil))
	require.NoError(t, err)

	require.Len(t, ds.Transactions, 2)
	tx := ds.Transactions[0]
	assert.Equal(t, "t1", tx.TransactionID)
	assert.Equal(t, "c1", tx.CustomerID)
	assert.Equal(t, schema.PaidStatus, tx.PaymentStatus)
	assert.Equal(t, 120.50, tx.TotalAmount)
	assert.Equal(t, time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC), tx.CreatedAt)

	// RFC3339 timestamps parse too.
	assert.Equal(t, time.Date(2024, 1, 12, 9, 30, 0, 0, time.UTC), ds.Transactions[1].CreatedAt)

	require.Len(t, ds.Sessions, 1)
	assert.Equal(t, "c1", ds.Sessions[0].CustomerID)

	require.Len(t, ds.Customers, 2)
	// Date-only columns parse at midnight UTC.
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), ds.Customers[0].SignupDate)

	require.Len(t, ds.Tickets, 1)
	assert.Equal(t, "c2", ds.Tickets[0].CustomerID)

	require.Len(t, ds.Products, 2)
	assert.Equal(t, 9.99, ds.Products[0].Price)
}

func TestParseArchiveErrors(t *testing.T) {
	t.Run("not a zip", func(t *testing.T) {
		_, err := ParseArchive([]byte("definitely not a zip"))
		assert.Error(t, err)
	})

	t.Run("missing member", func(t *testing.T) {
		var buf bytes.Buffer
		zw := zip.NewWriter(&buf)
		w, err := zw.Create(transactionsMember)
		require.NoError(t, err)
		_, err = w.Write([]byte(defaultMembers[transactionsMember]))
		require.NoError(t, err)
		require.NoError(t, zw.Close())

		_, err = ParseArchive(buf.Bytes())
		require.Error(t, err)
		assert.Contains(t, err.Error(), sessionsMember)
	})

	t.Run("missing declared column", func(t *testing.T) {
		raw := buildArchive(t, map[string]string{
			customersMember: "customer_id\nc1\n",
		})
		_, err := ParseArchive(raw)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "signup_date")
	})

	t.Run("unparseable timestamp", func(t *testing.T) {
		raw := buildArchive(t, map[string]string{
			customersMember: "customer_id,signup_date\nc1,not-a-date\n",
		})
		_, err := ParseArchive(raw)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "signup_date")
	})

	t.Run("unparseable amount", func(t *testing.T) {
		raw := buildArchive(t, map[string]string{
			transactionsMember: "transaction_id,customer_id,created_at,payment_status,total_amount\n" +
				"t1,c1,2024-01-10 08:00:00,paid,lots\n",
		})
		_, err := ParseArchive(raw)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "total_amount")
	})
}

func TestParseArchiveHeaderNormalization(t *testing.T) {
	// Headers with stray case and spacing still resolve.
	raw := buildArchive(t, map[string]string{
		customersMember: "Customer_ID, Signup_Date\nc1,2024-01-02\n",
	})
	ds, err := ParseArchive(raw)
	require.NoError(t, err)
	require.Len(t, ds.Customers, 1)
	assert.Equal(t, "c1", ds.Customers[0].CustomerID)
}

func TestHTTPFetcher(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		payload := buildArchive(t, nil)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write(payload)
		}))
		defer srv.Close()

		f := NewHTTPFetcher()
		got, err := f.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})

	t.Run("non-2xx wraps ErrFetchFailed", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "nope", http.StatusNotFound)
		}))
		defer srv.Close()

		f := NewHTTPFetcher()
		_, err := f.Fetch(context.Background(), srv.URL)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrFetchFailed)
	})

	t.Run("server unreachable", func(t *testing.T) {
		f := NewHTTPFetcher()
		_, err := f.Fetch(context.Background(), "http://127.0.0.1:1/archive.zip")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrFetchFailed, "transport errors are not fetch-status failures")
	})
}

func TestParseTimeLayouts(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2024-03-05 13:45:00", time.Date(2024, 3, 5, 13, 45, 0, 0, time.UTC)},
		{"2024-03-05T13:45:00Z", time.Date(2024, 3, 5, 13, 45, 0, 0, time.UTC)},
		{"2024-03-05", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := parseTime(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got)
	}

	_, err := parseTime("03/05/2024")
	assert.Error(t, err)
}
