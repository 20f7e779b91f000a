//go:build database

package integration

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestModelprofWithMySQL tests the modelprof CLI with a MySQL store backend.
func TestModelprofWithMySQL(t *testing.T) {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306:3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "modelprof",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(30 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	// Get connection details
	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/modelprof?parseTime=true", host, port.Port())
	runStoreWorkflow(t, "mysql", connStr)
}

// TestModelprofWithPostgres tests the modelprof CLI with a PostgreSQL store backend.
func TestModelprofWithPostgres(t *testing.T) {
	ctx := context.Background()

	// Start Postgres container
	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432:5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()
	time.Sleep(5 * time.Second)

	// Get connection details
	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres", host, port.Port())
	runStoreWorkflow(t, "postgresql", connStr)
}

// runStoreWorkflow exercises the full store lifecycle against a live database:
// migrate, save two profiles, inspect the store, then render by name.
func runStoreWorkflow(t *testing.T, backend, connStr string) {
	t.Helper()

	// Set environment variables
	_ = os.Setenv("MODELPROF_STORE_BACKEND", backend)
	_ = os.Setenv("MODELPROF_STORE_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("MODELPROF_STORE_BACKEND") }()
	defer func() { _ = os.Unsetenv("MODELPROF_STORE_DB_CONNECT") }()

	basePath := writeProfileFile(t, "resnet18", 44.59)
	targetPath := writeProfileFile(t, "resnet18-q", 22.295)

	// Run modelprof store migrate
	_, err := runModelprofCommand(t, "store", "migrate")
	require.NoError(t, err)

	// Run modelprof store save for both profiles
	_, err = runModelprofCommand(t, "store", "save", basePath)
	require.NoError(t, err)
	_, err = runModelprofCommand(t, "store", "save", targetPath)
	require.NoError(t, err)

	// Run modelprof store status
	output, err := runModelprofCommand(t, "store", "status")
	require.NoError(t, err)
	assert.Contains(t, output, backend)

	// Run modelprof store list
	output, err = runModelprofCommand(t, "store", "list")
	require.NoError(t, err)
	assert.Contains(t, output, "resnet18")
	assert.Contains(t, output, "resnet18-q")

	// Run modelprof show against the stored profile
	output, err = runModelprofCommand(t, "show", "resnet18", "--from-store")
	require.NoError(t, err)
	assert.Contains(t, output, "Model Profiler")
	assert.Contains(t, output, "Model Size (MB)")

	// Run modelprof compare against both stored profiles
	output, err = runModelprofCommand(t, "compare", "resnet18", "resnet18-q", "--from-store")
	require.NoError(t, err)
	assert.Contains(t, output, "0.50x")
}
