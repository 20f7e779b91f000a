package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/modelprof/modelprof/schema"
)

// Config holds the runtime configuration for a report run.
// This struct remains the "final, validated" config.
type Config struct {
	BaseProfile   string // path or stored name of the base profile
	TargetProfile string // path or stored name of the target profile
	FromStore     bool   // resolve profile arguments against the store

	Title    string
	Notes    bool // append the footnote section to text reports
	RawOrder bool // keep document order instead of the display order

	Output     schema.OutputMode
	OutputFile string
	Width      int  // Terminal width override (0 = auto-detect)
	UseColors  bool // Enable colored enhancement cells in grid output

	StoreBackend   schema.DatabaseBackend
	StoreDBConnect string // Please use env var as this is plaintext
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// These are set manually from positional args, so no tags
	BaseProfileStr   string
	TargetProfileStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Title          string `mapstructure:"title"`
	Notes          bool   `mapstructure:"notes"`
	RawOrder       bool   `mapstructure:"raw-order"`
	Output         string `mapstructure:"output"`
	OutputFile     string `mapstructure:"output-file"`
	Width          int    `mapstructure:"width"`
	Color          string `mapstructure:"color"`
	StoreBackend   string `mapstructure:"store-backend"`
	StoreDBConnect string `mapstructure:"store-db-connect"`

	// --- Fields from showCmd / compareCmd flags ---
	FromStore bool `mapstructure:"from-store"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	cfg.BaseProfile = input.BaseProfileStr
	cfg.TargetProfile = input.TargetProfileStr
	cfg.FromStore = input.FromStore
	cfg.Title = input.Title
	cfg.Notes = input.Notes
	cfg.RawOrder = input.RawOrder
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if cfg.Output == "" {
		cfg.Output = schema.TextOut
	}
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output mode '%s'. must be text, grid, json, csv, parquet", input.Output)
	}

	useColors, err := ParseBoolString(defaultString(input.Color, "yes"))
	if err != nil {
		return fmt.Errorf("invalid color flag: %w", err)
	}
	cfg.UseColors = useColors

	cfg.StoreBackend = schema.DatabaseBackend(strings.ToLower(defaultString(input.StoreBackend, string(schema.SQLiteBackend))))
	if _, ok := schema.ValidStoreBackends[cfg.StoreBackend]; !ok {
		return fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, none", input.StoreBackend)
	}
	cfg.StoreDBConnect = input.StoreDBConnect
	return ValidateDatabaseConnectionString(cfg.StoreBackend, cfg.StoreDBConnect)
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// GetStoreDBFilePath returns the path to the SQLite DB file for profile storage.
func GetStoreDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".modelprof.db"
	}
	return filepath.Join(homeDir, ".modelprof.db")
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
