// Package cmd defines the command-line interface for modelprof.
package cmd

import (
	"github.com/modelprof/modelprof/internal/contract"
	"github.com/modelprof/modelprof/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(storeCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the store subcommands to the parent store command
	storeCmd.AddCommand(storeSaveCmd)
	storeCmd.AddCommand(storeListCmd)
	storeCmd.AddCommand(storeStatusCmd)
	storeCmd.AddCommand(storeMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("title", "", "Report title override (default 'Model Profiler')")
	rootCmd.PersistentFlags().Bool("notes", false, "Append a footnote section with per-metric descriptions")
	rootCmd.PersistentFlags().Bool("raw-order", false, "Keep the profile's document order instead of the display order")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or grid or json or csv or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored enhancement cells in grid output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("store-backend", string(schema.SQLiteBackend), "Profile store backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("store-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of showCmd to Viper
	showCmd.Flags().Bool("from-store", false, "Resolve the profile name against the profile store")
	if err := viper.BindPFlags(showCmd.Flags()); err != nil {
		contract.LogFatal("Error binding show flags", err)
	}

	// Bind all flags of compareCmd to Viper
	compareCmd.Flags().Bool("from-store", false, "Resolve both profile names against the profile store")
	if err := viper.BindPFlags(compareCmd.Flags()); err != nil {
		contract.LogFatal("Error binding compare flags", err)
	}

	// Bind all flags of storeMigrateCmd to Viper
	storeMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(storeMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding store migrate flags", err)
	}
}
