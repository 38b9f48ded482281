package schema

import "time"

// CacheStatus represents the status of the dataset cache store.
type CacheStatus struct {
	Backend         string    `json:"backend"`
	Connected       bool      `json:"connected"`
	TotalEntries    int       `json:"total_entries"`
	LastEntryTime   time.Time `json:"last_entry_time"`
	OldestEntryTime time.Time `json:"oldest_entry_time"`
	TableSizeBytes  int64     `json:"table_size_bytes"`
}

// HistoryStatus represents the status of the analysis history store.
type HistoryStatus struct {
	Backend       string           `json:"backend"`
	Connected     bool             `json:"connected"`
	TotalRuns     int              `json:"total_runs"`
	LastRunID     int64            `json:"last_run_id"`
	LastRunTime   time.Time        `json:"last_run_time"`
	OldestRunTime time.Time        `json:"oldest_run_time"`
	TableSizes    map[string]int64 `json:"table_sizes"`
}

// HistoryRun represents a row from the bizdash_runs table.
type HistoryRun struct {
	RunID        int64
	StartTime    time.Time
	EndTime      *time.Time
	DurationMs   *int32
	ConfigParams *string
}

// HistorySection represents a row from the bizdash_run_sections table.
// One section is recorded per analyzer executed in a run.
type HistorySection struct {
	RunID        int64
	Section      string
	RunTime      time.Time
	RowCount     int32
	AnomalyCount int32
}
