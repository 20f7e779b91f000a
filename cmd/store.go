package cmd

import (
	"fmt"
	"os"

	"github.com/modelprof/modelprof/core"
	"github.com/modelprof/modelprof/internal/contract"
	"github.com/modelprof/modelprof/internal/profstore"
	"github.com/modelprof/modelprof/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// storeSetup loads minimal configuration needed for store operations.
// This is used by commands that need store access without full shared setup.
func storeSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get store-related config values
	backend := schema.DatabaseBackend(viper.GetString("store-backend"))
	connStr := viper.GetString("store-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Open the store with the loaded config
	var err error
	store, err = profstore.NewProfileStore(backend, connStr)
	if err != nil {
		return fmt.Errorf("failed to initialize profile store: %w", err)
	}

	cfg.StoreBackend = backend
	cfg.StoreDBConnect = connStr

	return nil
}

// storeSetupWrapper wraps storeSetup to provide PreRunE for store commands.
func storeSetupWrapper(_ *cobra.Command, _ []string) error {
	return storeSetup()
}

// storeCmd focused on profile store management.
//
// Note: Store subcommands use minimal initialization (storeSetup) instead of
// the full sharedSetup used by report commands. This avoids profile argument
// handling and report config processing for simple store operations.
var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the profile store (save and reuse profiles)",
	Long: `Manage the store that keeps model profiles for later reports.

Saved profiles can be rendered and compared by name with --from-store,
without keeping the original JSON files around.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  save    - Save a profile JSON file into the store
  list    - List saved profiles
  status  - Show store statistics and connection info
  migrate - Run store schema migrations

Examples:
  # Save a profile, then render it by name
  modelprof store save resnet18.json
  modelprof show resnet18 --from-store`,
}

// storeSaveCmd saves a profile file into the store.
var storeSaveCmd = &cobra.Command{
	Use:   "save [profile-file]",
	Short: "Save a profile JSON file into the store",
	Long: `Validate a profile JSON file and save it into the configured store.

Saving is an upsert: a profile with the same name replaces the previous
version, including all of its metrics.

Examples:
  # Save to the default SQLite store
  modelprof store save resnet18.json

  # Save to MySQL (set connection string via env variable)
  MODELPROF_STORE_BACKEND=mysql MODELPROF_STORE_DB_CONNECT="..." modelprof store save resnet18.json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		profile, err := core.ExecuteStoreSave(cfg, store, args[0])
		if err != nil {
			contract.LogFatal("Cannot save profile", err)
		}
		fmt.Printf("Saved profile '%s' with %d metrics.\n", profile.Name, len(profile.Metrics))
	},
}

// storeListCmd lists saved profiles.
var storeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved profiles",
	Long: `List all profiles in the configured store.

Shows each profile's name, backend, metric count and save time,
most recently saved first.`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		listing, err := store.List()
		if err != nil {
			contract.LogFatal("Cannot list saved profiles", err)
		}
		profstore.PrintStoreListing(os.Stdout, listing)
	},
}

// storeStatusCmd shows store status.
var storeStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display store statistics and connection details",
	Long: `Show detailed information about the profile store.

Displays:
- Backend type
- Total number of saved profiles
- Total number of stored metrics

Use this to:
- Verify the store is working and connected
- Monitor store growth over time
- Debug store-related issues`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := store.GetStatus()
		if err != nil {
			contract.LogFatal("Cannot get store status", err)
		}
		profstore.PrintStoreStatus(os.Stdout, status)
	},
}

// storeMigrateCmd runs store schema migrations.
var storeMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run store schema migrations",
	Long: `Run schema migrations for the profile store database.

By default migrates to the latest version. Use --target-version to
migrate to a specific version, or 0 to roll back to the initial state.

Examples:
  # Migrate the default SQLite store to the latest schema
  modelprof store migrate

  # Roll back all migrations
  modelprof store migrate --target-version 0`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		// Migrations manage their own connection, so skip opening the store.
		if err := loadConfigFile(); err != nil {
			return err
		}
		backend := schema.DatabaseBackend(viper.GetString("store-backend"))
		connStr := viper.GetString("store-db-connect")
		if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
			return err
		}
		cfg.StoreBackend = backend
		cfg.StoreDBConnect = connStr
		return nil
	},
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := profstore.Migrate(cfg.StoreBackend, cfg.StoreDBConnect, targetVersion); err != nil {
			contract.LogFatal("Cannot run store migrations", err)
		}
		fmt.Println("Store migrations completed successfully.")
	},
}
