package iocache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rushiraj-gohil/bizdash/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withHistoryStore swaps the global manager's history store for the duration
// of a test.
func withHistoryStore(t *testing.T, store *HistoryStoreImpl) {
	t.Helper()
	prev := Manager
	Manager = &CacheStoreManager{history: store}
	t.Cleanup(func() { Manager = prev })
}

func TestExecuteHistoryExport(t *testing.T) {
	store := newSQLiteHistoryStore(t)
	withHistoryStore(t, store)

	runID, err := store.BeginRun(time.Now(), sampleParams())
	require.NoError(t, err)
	require.NoError(t, store.RecordSection(runID, "revenue_trend", 12, 1))
	require.NoError(t, store.RecordSection(runID, "support_payment", 40, 0))
	require.NoError(t, store.EndRun(runID, time.Now()))

	outBase := filepath.Join(t.TempDir(), "history_export")
	require.NoError(t, ExecuteHistoryExport(outBase))

	runsFile := outBase + ".runs.parquet"
	sectionsFile := outBase + ".run_sections.parquet"

	info, err := os.Stat(runsFile)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	info, err = os.Stat(sectionsFile)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExecuteHistoryExportValidation(t *testing.T) {
	t.Run("missing output file", func(t *testing.T) {
		assert.Error(t, ExecuteHistoryExport(""))
	})

	t.Run("empty history", func(t *testing.T) {
		store := newSQLiteHistoryStore(t)
		withHistoryStore(t, store)

		err := ExecuteHistoryExport(filepath.Join(t.TempDir(), "out"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no run history")
	})

	t.Run("none backend has nothing to export", func(t *testing.T) {
		store, err := NewHistoryStore(schema.NoneBackend, "")
		require.NoError(t, err)
		withHistoryStore(t, store.(*HistoryStoreImpl))

		err = ExecuteHistoryExport(filepath.Join(t.TempDir(), "out"))
		assert.Error(t, err)
	})
}
