package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// PaymentStatus represents the outcome of a transaction payment.
	PaymentStatus string

	// AnomalyLabel marks a monthly revenue point as anomalous or not.
	AnomalyLabel string

	// DatabaseBackend represents the database backend for durable storage.
	DatabaseBackend string
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// Payment statuses referenced by the analyzers. The cleaned dataset may carry
// additional statuses; they pass through the pivot untouched.
const (
	PaidStatus        PaymentStatus = "paid"
	RefundedStatus    PaymentStatus = "refunded"
	ChargedBackStatus PaymentStatus = "charged_back"
)

// Anomaly labels surfaced in revenue trend output.
const (
	AnomalyValue AnomalyLabel = "Anomaly"
	NormalValue  AnomalyLabel = "Normal"
)

// All storage backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// AnomalyZThreshold is the absolute Z-score above which a month is flagged.
const AnomalyZThreshold = 2.0

// MaxRetentionOffset is the largest month offset tracked in the retention
// matrix. Offsets run from 0 (signup month) through MaxRetentionOffset inclusive.
const MaxRetentionOffset = 5

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid storage backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
