package loader

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rushiraj-gohil/bizdash/internal/contract"
	"github.com/rushiraj-gohil/bizdash/schema"
)

// archiveCacheVersion is bumped when the parsed representation changes in a way
// that makes previously cached archive bytes unusable.
const archiveCacheVersion = 1

// DatasetManager memoizes parsed datasets for the process lifetime so repeated
// renders never re-fetch. The memo is never invalidated; --refresh only bypasses
// the durable byte cache, not the in-process memo.
type DatasetManager struct {
	mu       sync.Mutex
	fetcher  contract.ArchiveFetcher
	datasets map[string]*schema.Dataset
}

// Manager is the global dataset manager used by the command layer.
var Manager = NewDatasetManager(nil)

// NewDatasetManager returns a manager backed by the given fetcher.
// A nil fetcher defaults to the HTTP fetcher on first use.
func NewDatasetManager(fetcher contract.ArchiveFetcher) *DatasetManager {
	return &DatasetManager{
		fetcher:  fetcher,
		datasets: make(map[string]*schema.Dataset),
	}
}

// SetFetcher overrides the fetcher. Used by tests to avoid network access.
func (m *DatasetManager) SetFetcher(fetcher contract.ArchiveFetcher) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetcher = fetcher
}

// Reset clears the in-process memo. Used by tests.
func (m *DatasetManager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.datasets = make(map[string]*schema.Dataset)
}

// Load returns the dataset for cfg.ArchiveURL, resolving in order: in-process
// memo, durable byte cache (unless cfg.Refresh), network fetch. A fetched
// archive is written back to the durable cache best-effort.
func (m *DatasetManager) Load(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) (*schema.Dataset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ds, ok := m.datasets[cfg.ArchiveURL]; ok {
		return ds, nil
	}

	var store contract.CacheStore
	if mgr != nil {
		store = mgr.GetDatasetStore()
	}

	raw, fetched, err := m.resolveArchive(ctx, cfg, store)
	if err != nil {
		return nil, err
	}

	ds, err := ParseArchive(raw)
	if err != nil {
		return nil, fmt.Errorf("parse dataset archive: %w", err)
	}

	if fetched && store != nil {
		if err := store.Set(cfg.ArchiveURL, raw, archiveCacheVersion, time.Now().Unix()); err != nil {
			contract.LogWarn("could not cache dataset archive", err)
		}
	}

	m.datasets[cfg.ArchiveURL] = ds
	return ds, nil
}

// resolveArchive returns the raw archive bytes and whether they came from the
// network (and should be written back to the cache).
func (m *DatasetManager) resolveArchive(ctx context.Context, cfg *contract.Config, store contract.CacheStore) ([]byte, bool, error) {
	if store != nil && !cfg.Refresh {
		if raw, version, _, err := store.Get(cfg.ArchiveURL); err == nil && version == archiveCacheVersion && len(raw) > 0 {
			return raw, false, nil
		}
	}

	if m.fetcher == nil {
		m.fetcher = NewHTTPFetcher()
	}
	raw, err := m.fetcher.Fetch(ctx, cfg.ArchiveURL)
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}
