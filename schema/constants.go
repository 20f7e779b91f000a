package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for the profile store.
	DatabaseBackend string
)

// Reserved status keys that hold scalar identity entries, never metrics.
const (
	NameKey    = "name"    // profile/model identifier
	BackendKey = "backend" // execution backend identifier
)

// Well-known metric keys used by the display ordering policy.
const (
	EvalMetricKey      = "eval_metric"
	ModelSizeKey       = "model_size"
	FlopsKey           = "flops"
	TotalParamsKey     = "total_params"
	MemoryFootprintKey = "memory_footprint"
	ExecutionTimeKey   = "execution_time"

	// InferenceTimeKey is always dropped from display; execution time
	// covers the same signal and is more relevant to readers.
	InferenceTimeKey = "inference_time"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	GridOut    OutputMode = "grid"
	JSONOut    OutputMode = "json"
	CSVOut     OutputMode = "csv"
	ParquetOut OutputMode = "parquet"
)

// All profile store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	GridOut:    {},
	JSONOut:    {},
	CSVOut:     {},
	ParquetOut: {},
}

// ValidStoreBackends lists all valid profile store backends.
var ValidStoreBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
