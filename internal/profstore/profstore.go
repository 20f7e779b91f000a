// Package profstore persists saved profiles across runs using various
// database backends.
package profstore

import (
	"database/sql"
	"fmt"

	"github.com/modelprof/modelprof/internal/contract"
	"github.com/modelprof/modelprof/schema"

	_ "github.com/go-sql-driver/mysql"  // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib"  // PostgreSQL driver
	_ "modernc.org/sqlite"              // SQLite driver
)

// Table names for profile storage.
const (
	profilesTable = "modelprof_profiles"
	metricsTable  = "modelprof_metrics"
)

// ProfileStoreImpl handles durable profile storage using various database backends.
type ProfileStoreImpl struct {
	db         *sql.DB
	backend    schema.DatabaseBackend
	driverName string
}

var _ contract.ProfileStore = &ProfileStoreImpl{} // Compile-time check

// NewProfileStore initializes and returns a new ProfileStore based on the backend type.
func NewProfileStore(backend schema.DatabaseBackend, connStr string) (contract.ProfileStore, error) {
	db, driverName, err := openDB(backend, connStr)
	if err != nil {
		return nil, err
	}
	if db == nil {
		// No-op store for disabled persistence
		return &ProfileStoreImpl{backend: backend}, nil
	}

	// Ping to verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database. Check that the server is running and connection parameters are valid: %w", backend, err)
	}

	// Create the table schemas
	if err := createProfileTables(db, backend); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create profile tables: %w", err)
	}

	return &ProfileStoreImpl{db: db, backend: backend, driverName: driverName}, nil
}

// openDB opens the raw database handle for a backend. A nil handle with a
// nil error means persistence is disabled.
func openDB(backend schema.DatabaseBackend, connStr string) (*sql.DB, string, error) {
	switch backend {
	case schema.SQLiteBackend:
		dbPath := connStr
		if dbPath == "" {
			dbPath = contract.GetStoreDBFilePath()
		}
		db, err := sql.Open("sqlite", dbPath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open SQLite database at %q: %w. Check that the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)
		return db, "sqlite", nil

	case schema.MySQLBackend:
		// connStr should be:
		// user:password@tcp(host:port)/dbname
		db, err := sql.Open("mysql", connStr)
		if err != nil {
			return nil, "", fmt.Errorf("failed to connect to MySQL: %w. Check connection format: user:password@tcp(host:port)/dbname", err)
		}
		return db, "mysql", nil

	case schema.PostgreSQLBackend:
		// connStr should be:
		// host=localhost port=5432 user=postgres password=secret dbname=modelprof
		db, err := sql.Open("pgx", connStr)
		if err != nil {
			return nil, "", fmt.Errorf("failed to connect to PostgreSQL: %w. Check connection format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}
		return db, "pgx", nil

	case schema.NoneBackend:
		return nil, "", nil

	default:
		return nil, "", fmt.Errorf("unsupported store backend: %s. Must be sqlite, mysql, postgresql, or none", backend)
	}
}

// createProfileTables creates the profile tables for the given backend.
func createProfileTables(db *sql.DB, backend schema.DatabaseBackend) error {
	for _, query := range getCreateTableQueries(backend) {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}
	return nil
}

// getCreateTableQueries returns the CREATE TABLE queries for the given backend.
// Column types are kept portable: VARCHAR(255) keys so MySQL can index the
// primary key, BIGINT epoch seconds for timestamps.
func getCreateTableQueries(backend schema.DatabaseBackend) []string {
	valueType := "DOUBLE PRECISION"
	if backend == schema.MySQLBackend {
		valueType = "DOUBLE"
	}

	profiles := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			profile_name VARCHAR(255) PRIMARY KEY,
			backend VARCHAR(255) NOT NULL,
			saved_at BIGINT NOT NULL
		);
	`, profilesTable)

	metrics := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			profile_name VARCHAR(255) NOT NULL,
			metric_key VARCHAR(255) NOT NULL,
			metric_position INT NOT NULL,
			label VARCHAR(255) NOT NULL,
			metric_value %s NULL,
			units VARCHAR(255) NOT NULL,
			comparative VARCHAR(32) NOT NULL,
			description TEXT,
			PRIMARY KEY (profile_name, metric_key)
		);
	`, metricsTable, valueType)

	return []string{profiles, metrics}
}

// rebind converts ? placeholders to the $N form PostgreSQL expects.
func (s *ProfileStoreImpl) rebind(query string) string {
	if s.driverName != "pgx" {
		return query
	}
	var out []byte
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			out = append(out, fmt.Sprintf("$%d", n)...)
			continue
		}
		out = append(out, query[i])
	}
	return string(out)
}

// Close releases the underlying database handle.
func (s *ProfileStoreImpl) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
