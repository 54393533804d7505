package cli

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"

	"github.com/ahrav/go-lmscore/infrastructure/sqlite"
)

var createdbCmd = &cobra.Command{
	Use:   "createdb",
	Short: "Create and seed the sample company database",
	Long: `Create a SQLite database with emails, invoices, and sales_leads tables,
each seeded with ten rows of sample business data for trying out LM_SCORE
queries.

Examples:
  lmscore createdb
  lmscore createdb --db company.db`,
	RunE: runCreateDB,
}

func init() {
	rootCmd.AddCommand(createdbCmd)
}

func runCreateDB(cmd *cobra.Command, args []string) error {
	path := databasePath()

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("failed to open database %s: %w", path, err)
	}
	defer db.Close()

	summary, err := sqlite.CreateSampleDatabase(db)
	if err != nil {
		return fmt.Errorf("failed to create sample database: %w", err)
	}

	fmt.Printf("Database created successfully at: %s\n", path)
	fmt.Printf("  Emails: %d\n", summary.Emails)
	fmt.Printf("  Invoices: %d\n", summary.Invoices)
	fmt.Printf("  Sales Leads: %d\n", summary.SalesLeads)
	fmt.Printf("  Total entries: %d\n", summary.Total())
	return nil
}
