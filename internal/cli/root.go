// Package cli implements the lmscore command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ahrav/go-lmscore/internal/application"
)

var (
	cfgFile string
	cfg     application.AppConfig
)

var rootCmd = &cobra.Command{
	Use:   "lmscore",
	Short: "Semantic scoring of content with a language model",
	Long: `lmscore scores content against yes/no questions using a language model,
returning an integer confidence from 0 (strongly no) to 10 (strongly yes).

Example usage:
  lmscore createdb                                        # Seed a sample database
  lmscore score -q "Is this about billing?" "Invoice due" # Score content directly
  lmscore benchmark                                       # Score the sample database`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = application.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is built-in defaults plus environment)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database path (default from config)")
}

var dbPath string

// databasePath resolves the SQLite path from the flag or config.
func databasePath() string {
	if dbPath != "" {
		return dbPath
	}
	return cfg.DatabasePath
}
