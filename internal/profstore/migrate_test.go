package profstore

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/modelprof/modelprof/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_SQLiteUpAndDown(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate.db")

	// Migrate to latest
	require.NoError(t, Migrate(schema.SQLiteBackend, dbPath, -1))

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	var count int
	require.NoError(t, db.QueryRow(
		`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name IN ('modelprof_profiles', 'modelprof_metrics')`).Scan(&count))
	assert.Equal(t, 2, count)

	// Migrating again is a no-op
	require.NoError(t, Migrate(schema.SQLiteBackend, dbPath, -1))

	// Roll back to initial state
	require.NoError(t, Migrate(schema.SQLiteBackend, dbPath, 0))
	require.NoError(t, db.QueryRow(
		`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name IN ('modelprof_profiles', 'modelprof_metrics')`).Scan(&count))
	assert.Equal(t, 0, count)
}

func TestMigrate_NoneBackendRejected(t *testing.T) {
	assert.Error(t, Migrate(schema.NoneBackend, "", -1))
}
