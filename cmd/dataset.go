package cmd

import (
	"fmt"

	"github.com/rushiraj-gohil/bizdash/internal/contract"
	"github.com/rushiraj-gohil/bizdash/internal/iocache"
	"github.com/rushiraj-gohil/bizdash/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// datasetSetup loads minimal configuration needed for dataset cache operations.
// This is used by commands that need cache access without full shared setup.
func datasetSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get cache-related config values
	backend := schema.DatabaseBackend(viper.GetString("cache-backend"))
	connStr := viper.GetString("cache-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Initialize caching with the loaded config (no history tracking for dataset commands)
	if err := iocache.InitStores(backend, connStr, "", ""); err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}

	cfg.CacheBackend = backend
	cfg.CacheDBConnect = connStr

	return nil
}

// datasetSetupWrapper wraps datasetSetup to provide PreRunE for dataset commands.
func datasetSetupWrapper(_ *cobra.Command, _ []string) error {
	return datasetSetup()
}

// datasetCmd focused on dataset cache management.
//
// Note: Dataset subcommands use minimal initialization (datasetSetup) instead of
// the full sharedSetup used by analysis commands. This avoids archive URL
// validation and complex config processing for simple cache operations.
var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Manage the durable dataset archive cache (avoids repeated downloads)",
	Long: `Manage the durable cache of fetched dataset archives.

Bizdash caches the raw ZIP archive bytes keyed by URL, so repeated CLI
invocations skip the network entirely. The in-process memo still guarantees a
single parse per process.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status - Show cache statistics and connection info
  clear  - Remove all cached archives

Examples:
  # Check cache status
  bizdash dataset status

  # Clear the cache after the upstream dataset is republished
  bizdash dataset clear`,
}

// datasetClearCmd clears the dataset cache.
var datasetClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached dataset archives",
	Long: `Delete all cached dataset archives from the configured backend.

Use this when:
- The upstream dataset was republished at the same URL
- Cache may be stale or corrupted
- Testing fetch behavior without cache

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the cache table

Examples:
  # Clear SQLite cache (default)
  bizdash dataset clear

  # Clear MySQL cache (set connection string via env variable)
  BIZDASH_CACHE_BACKEND=mysql BIZDASH_CACHE_DB_CONNECT="..." bizdash dataset clear`,
	PreRunE: datasetSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ClearCache(cfg.CacheBackend, contract.GetCacheDBFilePath(), cfg.CacheDBConnect); err != nil {
			contract.LogFatal("Failed to clear dataset cache", err)
		}
		fmt.Println("Dataset cache cleared successfully.")
	},
}

// datasetStatusCmd shows dataset cache status.
var datasetStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display dataset cache statistics and connection details",
	Long: `Show detailed information about the dataset archive cache.

Displays:
- Backend type and connection status
- Total number of cached archives
- Last and oldest cache entry timestamps
- Cache database size

Examples:
  # Check cache status
  bizdash dataset status`,
	PreRunE: datasetSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := iocache.Manager.GetDatasetStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get dataset cache status", err)
		}
		iocache.PrintCacheStatus(status)
	},
}
