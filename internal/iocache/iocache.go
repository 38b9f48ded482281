// Package iocache is for durable storage of fetched datasets and run history.
package iocache

import (
	"sync"

	"github.com/rushiraj-gohil/bizdash/internal/contract"
)

// CacheStoreManager manages the dataset cache and history store instances.
type CacheStoreManager struct {
	sync.RWMutex // Protects the store pointers during initialization
	dataset      contract.CacheStore
	history      contract.HistoryStore
}

var _ contract.CacheManager = &CacheStoreManager{} // Compile-time check

// GetDatasetStore returns the dataset CacheStore.
func (mgr *CacheStoreManager) GetDatasetStore() contract.CacheStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.dataset
}

// GetHistoryStore returns the analysis HistoryStore.
func (mgr *CacheStoreManager) GetHistoryStore() contract.HistoryStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.history
}
