// Package loader fetches the cleaned e-commerce dataset archive and parses its
// five CSV tables into typed structures.
package loader

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rushiraj-gohil/bizdash/internal/contract"
	"github.com/rushiraj-gohil/bizdash/schema"
	"github.com/schollz/progressbar/v3"
)

// ErrFetchFailed indicates the archive download did not return a success
// status. The fetch is terminal for the render cycle; there is no retry.
var ErrFetchFailed = errors.New("dataset fetch failed")

// Archive member names, fixed by the dataset contract.
const (
	transactionsMember = "cleaned_transactions.csv"
	sessionsMember     = "cleaned_sessions.csv"
	customersMember    = "cleaned_customers.csv"
	ticketsMember      = "cleaned_support_tickets.csv"
	productsMember     = "cleaned_products.csv"
)

// HTTPFetcher downloads the dataset archive over HTTP(S).
type HTTPFetcher struct {
	Client *http.Client
}

var _ contract.ArchiveFetcher = &HTTPFetcher{} // Compile-time check

// NewHTTPFetcher returns a fetcher backed by a default HTTP client.
func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{Client: &http.Client{Timeout: 5 * time.Minute}}
}

// Fetch implements the ArchiveFetcher interface. A non-2xx response wraps
// ErrFetchFailed so callers can distinguish it from transport errors.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", url, err)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %s for %s", ErrFetchFailed, resp.Status, url)
	}

	var buf bytes.Buffer
	bar := progressbar.DefaultBytes(resp.ContentLength, "downloading dataset")
	if _, err := io.Copy(io.MultiWriter(&buf, bar), resp.Body); err != nil {
		return nil, fmt.Errorf("read archive body: %w", err)
	}
	return buf.Bytes(), nil
}

// ParseArchive decompresses the ZIP archive in memory and parses each of the
// five members into a typed table. Declared date columns are parsed into
// timestamps; a missing member or unparseable declared column is an error.
func ParseArchive(data []byte) (*schema.Dataset, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}

	ds := &schema.Dataset{}

	if err := parseMember(zr, transactionsMember, func(t *table) error {
		var parseErr error
		ds.Transactions, parseErr = parseTransactions(t)
		return parseErr
	}); err != nil {
		return nil, err
	}
	if err := parseMember(zr, sessionsMember, func(t *table) error {
		var parseErr error
		ds.Sessions, parseErr = parseSessions(t)
		return parseErr
	}); err != nil {
		return nil, err
	}
	if err := parseMember(zr, customersMember, func(t *table) error {
		var parseErr error
		ds.Customers, parseErr = parseCustomers(t)
		return parseErr
	}); err != nil {
		return nil, err
	}
	if err := parseMember(zr, ticketsMember, func(t *table) error {
		var parseErr error
		ds.Tickets, parseErr = parseTickets(t)
		return parseErr
	}); err != nil {
		return nil, err
	}
	if err := parseMember(zr, productsMember, func(t *table) error {
		var parseErr error
		ds.Products, parseErr = parseProducts(t)
		return parseErr
	}); err != nil {
		return nil, err
	}

	return ds, nil
}

// parseMember opens one archive member, reads it as a headered CSV table and
// hands it to the table-specific parser.
func parseMember(zr *zip.Reader, name string, parse func(*table) error) error {
	f, err := zr.Open(name)
	if err != nil {
		return fmt.Errorf("archive member %s: %w", name, err)
	}
	defer func() { _ = f.Close() }()

	t, err := readTable(f)
	if err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	if err := parse(t); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}
