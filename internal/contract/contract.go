// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/rushiraj-gohil/bizdash/schema"
	"github.com/stretchr/testify/mock"
)

// ArchiveFetcher defines the single network operation the loader depends on.
// This allows the loading and analysis logic to be tested without network access.
type ArchiveFetcher interface {
	// Fetch downloads the dataset archive and returns its raw bytes.
	// A non-success HTTP status is a terminal error; there is no retry.
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// CacheManager defines the interface for managing durable stores.
// This allows the storage layer to be mocked for testing.
type CacheManager interface {
	GetDatasetStore() CacheStore
	GetHistoryStore() HistoryStore
}

// CacheStore defines the interface for dataset archive caching.
// This allows mocking the store for testing.
type CacheStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	GetStatus() (schema.CacheStatus, error)
	Close() error
}

// HistoryStore defines the interface for tracking analysis runs.
type HistoryStore interface {
	// BeginRun creates a new analysis run and returns its unique ID
	BeginRun(startTime time.Time, configParams map[string]any) (int64, error)

	// EndRun updates the analysis run with completion data
	EndRun(runID int64, endTime time.Time) error

	// RecordSection stores the outcome of a single analyzer within a run
	RecordSection(runID int64, section string, rowCount int, anomalyCount int) error

	// GetAllRuns returns every recorded run
	GetAllRuns() ([]schema.HistoryRun, error)

	// GetAllSections returns every recorded analyzer section
	GetAllSections() ([]schema.HistorySection, error)

	// GetStatus returns status information about the history store
	GetStatus() (schema.HistoryStatus, error)

	// Close closes the underlying connection
	Close() error
}

// --- MockFetcher Implementation ---

// MockFetcher is an autogenerated mock type for the ArchiveFetcher type.
type MockFetcher struct {
	mock.Mock
}

var _ ArchiveFetcher = &MockFetcher{} // Compile-time check

// Fetch implements the ArchiveFetcher interface.
func (m *MockFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	ret := m.Called(ctx, url)
	data, _ := ret.Get(0).([]byte)
	return data, ret.Error(1)
}
