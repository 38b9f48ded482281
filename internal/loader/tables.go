package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rushiraj-gohil/bizdash/schema"
)

// table is a headered CSV member read fully into memory.
type table struct {
	columns map[string]int
	rows    [][]string
}

// readTable reads a CSV stream with a header row into a table.
func readTable(r io.Reader) (*table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("missing header row")
	}

	columns := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		columns[strings.TrimSpace(strings.ToLower(name))] = i
	}
	return &table{columns: columns, rows: records[1:]}, nil
}

// field returns the named column of a row, or "" if the column is absent.
func (t *table) field(row []string, column string) string {
	idx, ok := t.columns[column]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// requireColumns verifies the header carries every declared column.
func (t *table) requireColumns(names ...string) error {
	for _, name := range names {
		if _, ok := t.columns[name]; !ok {
			return fmt.Errorf("missing column %q", name)
		}
	}
	return nil
}

// timeLayouts are the timestamp formats the cleaned CSVs are known to carry.
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02",
}

// parseTime parses a declared date-like column value in UTC.
func parseTime(value string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if ts, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", value)
}

func parseTransactions(t *table) ([]schema.Transaction, error) {
	if err := t.requireColumns("transaction_id", "customer_id", "created_at", "payment_status", "total_amount"); err != nil {
		return nil, err
	}
	out := make([]schema.Transaction, 0, len(t.rows))
	for i, row := range t.rows {
		createdAt, err := parseTime(t.field(row, "created_at"))
		if err != nil {
			return nil, fmt.Errorf("row %d: created_at: %w", i+1, err)
		}
		amount, err := strconv.ParseFloat(t.field(row, "total_amount"), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: total_amount: %w", i+1, err)
		}
		out = append(out, schema.Transaction{
			TransactionID: t.field(row, "transaction_id"),
			CustomerID:    t.field(row, "customer_id"),
			CreatedAt:     createdAt,
			PaymentStatus: schema.PaymentStatus(t.field(row, "payment_status")),
			TotalAmount:   amount,
		})
	}
	return out, nil
}

func parseSessions(t *table) ([]schema.Session, error) {
	if err := t.requireColumns("customer_id", "session_start", "session_end"); err != nil {
		return nil, err
	}
	out := make([]schema.Session, 0, len(t.rows))
	for i, row := range t.rows {
		start, err := parseTime(t.field(row, "session_start"))
		if err != nil {
			return nil, fmt.Errorf("row %d: session_start: %w", i+1, err)
		}
		end, err := parseTime(t.field(row, "session_end"))
		if err != nil {
			return nil, fmt.Errorf("row %d: session_end: %w", i+1, err)
		}
		out = append(out, schema.Session{
			CustomerID:   t.field(row, "customer_id"),
			SessionStart: start,
			SessionEnd:   end,
		})
	}
	return out, nil
}

func parseCustomers(t *table) ([]schema.Customer, error) {
	if err := t.requireColumns("customer_id", "signup_date"); err != nil {
		return nil, err
	}
	out := make([]schema.Customer, 0, len(t.rows))
	for i, row := range t.rows {
		signup, err := parseTime(t.field(row, "signup_date"))
		if err != nil {
			return nil, fmt.Errorf("row %d: signup_date: %w", i+1, err)
		}
		out = append(out, schema.Customer{
			CustomerID: t.field(row, "customer_id"),
			SignupDate: signup,
		})
	}
	return out, nil
}

func parseTickets(t *table) ([]schema.SupportTicket, error) {
	if err := t.requireColumns("customer_id", "created_at", "resolved_at"); err != nil {
		return nil, err
	}
	out := make([]schema.SupportTicket, 0, len(t.rows))
	for i, row := range t.rows {
		createdAt, err := parseTime(t.field(row, "created_at"))
		if err != nil {
			return nil, fmt.Errorf("row %d: created_at: %w", i+1, err)
		}
		resolvedAt, err := parseTime(t.field(row, "resolved_at"))
		if err != nil {
			return nil, fmt.Errorf("row %d: resolved_at: %w", i+1, err)
		}
		out = append(out, schema.SupportTicket{
			CustomerID: t.field(row, "customer_id"),
			CreatedAt:  createdAt,
			ResolvedAt: resolvedAt,
		})
	}
	return out, nil
}

// parseProducts has no declared date columns and tolerates a missing price
// column; the products table is loaded but never consumed by the analyzers.
func parseProducts(t *table) ([]schema.Product, error) {
	if err := t.requireColumns("product_id"); err != nil {
		return nil, err
	}
	out := make([]schema.Product, 0, len(t.rows))
	for _, row := range t.rows {
		price, _ := strconv.ParseFloat(t.field(row, "price"), 64)
		out = append(out, schema.Product{
			ProductID: t.field(row, "product_id"),
			Name:      t.field(row, "name"),
			Category:  t.field(row, "category"),
			Price:     price,
		})
	}
	return out, nil
}
