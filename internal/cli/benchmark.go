package cli

import (
	"database/sql"
	"fmt"
	"math"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/ahrav/go-lmscore/infrastructure/scoring"
	"github.com/ahrav/go-lmscore/infrastructure/sqlite"
	"github.com/ahrav/go-lmscore/internal/application"
)

var benchmarkFull bool

var benchmarkCmd = &cobra.Command{
	Use:   "benchmark",
	Short: "Score the sample database with a fixed query set",
	Long: `Run LM_SCORE over the sample company database with two questions per
table. By default only the emails table is scored; --full adds invoices
and sales leads. When a judge model is configured, each score is graded
against the judge and an agreement summary is printed.

Examples:
  lmscore benchmark
  lmscore benchmark --full --db company.db`,
	RunE: runBenchmark,
}

func init() {
	rootCmd.AddCommand(benchmarkCmd)
	benchmarkCmd.Flags().BoolVar(&benchmarkFull, "full", false, "score all tables, not just emails")
}

// benchmarkQuery describes one scored slice of a sample table.
type benchmarkQuery struct {
	label    string
	question string
	table    string
	columns  [2]string
	display  string
	limit    int
	offset   int
	fullOnly bool
}

var benchmarkQueries = []benchmarkQuery{
	{
		label:    "EMAILS - Question 1/2",
		question: "Is this email about billing or payments?",
		table:    "emails",
		columns:  [2]string{"subject", "body"},
		display:  "email",
		limit:    5,
	},
	{
		label:    "EMAILS - Question 2/2",
		question: "Is this email about meetings or scheduling?",
		table:    "emails",
		columns:  [2]string{"subject", "body"},
		display:  "email",
		limit:    5,
		offset:   5,
	},
	{
		label:    "INVOICES - Question 1/2",
		question: "Is this invoice for a software or technology product?",
		table:    "invoices",
		columns:  [2]string{"product", "description"},
		display:  "customer",
		limit:    5,
		fullOnly: true,
	},
	{
		label:    "INVOICES - Question 2/2",
		question: "Is this invoice for a service or consulting engagement?",
		table:    "invoices",
		columns:  [2]string{"product", "description"},
		display:  "customer",
		limit:    5,
		offset:   5,
		fullOnly: true,
	},
	{
		label:    "SALES LEADS - Question 1/2",
		question: "Is this lead interested in cloud or SaaS solutions?",
		table:    "sales_leads",
		columns:  [2]string{"client_name", "description"},
		display:  "client_name",
		limit:    5,
		fullOnly: true,
	},
	{
		label:    "SALES LEADS - Question 2/2",
		question: "Is this lead in healthcare or medical industry?",
		table:    "sales_leads",
		columns:  [2]string{"client_name", "description"},
		display:  "client_name",
		limit:    5,
		offset:   5,
		fullOnly: true,
	},
}

// benchmarkDriverName is registered once per process on first
// benchmark run.
const benchmarkDriverName = "sqlite3_lmscore"

var benchmarkDriverRegistered bool

func runBenchmark(cmd *cobra.Command, args []string) error {
	assembly, err := application.Build(cfg)
	if err != nil {
		return err
	}

	if !benchmarkDriverRegistered {
		sqlite.RegisterDriver(benchmarkDriverName, assembly.Engine)
		benchmarkDriverRegistered = true
	}

	db, err := sql.Open(benchmarkDriverName, databasePath())
	if err != nil {
		return fmt.Errorf("failed to open database %s: %w", databasePath(), err)
	}
	defer db.Close()

	queries := make([]benchmarkQuery, 0, len(benchmarkQueries))
	for _, q := range benchmarkQueries {
		if q.fullOnly && !benchmarkFull {
			continue
		}
		queries = append(queries, q)
	}

	totalRows := 0
	for _, q := range queries {
		totalRows += q.limit
	}

	bar := progressbar.NewOptions(totalRows,
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("Scoring"),
	)

	var agreement judgeAgreement
	for _, q := range queries {
		if err := runBenchmarkQuery(cmd, db, assembly.Judge, q, bar, &agreement); err != nil {
			return err
		}
	}

	if assembly.Judge != nil && agreement.rows > 0 {
		fmt.Println()
		agreement.print()
	}
	return nil
}

func runBenchmarkQuery(
	cmd *cobra.Command,
	db *sql.DB,
	judge *scoring.Engine,
	q benchmarkQuery,
	bar *progressbar.ProgressBar,
	agreement *judgeAgreement,
) error {
	fmt.Printf("\n[%s] %s\n", q.label, q.question)

	query := fmt.Sprintf(
		"SELECT %s, %s, %s, LM_SCORE(%s, %s, ?) FROM %s LIMIT %d OFFSET %d",
		q.display, q.columns[0], q.columns[1],
		q.columns[0], q.columns[1],
		q.table, q.limit, q.offset,
	)

	rows, err := db.QueryContext(cmd.Context(), query, q.question)
	if err != nil {
		return fmt.Errorf("benchmark query on %s failed: %w", q.table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var display, colA, colB string
		var score int
		if err := rows.Scan(&display, &colA, &colB, &score); err != nil {
			return fmt.Errorf("failed to scan benchmark row: %w", err)
		}

		fmt.Printf("  %s: %d/10\n", display, score)
		_ = bar.Add(1)

		if judge != nil {
			judgeScore, err := judge.Score(cmd.Context(), []string{colA, colB}, q.question)
			if err != nil {
				return fmt.Errorf("judge scoring failed: %w", err)
			}
			agreement.record(score, int(judgeScore))
		}
	}
	return rows.Err()
}

// judgeAgreement accumulates how closely benchmark scores track the
// judge model.
type judgeAgreement struct {
	rows       int
	exactMatch int
	withinOne  int
	absDiffSum int
}

func (a *judgeAgreement) record(score, judgeScore int) {
	diff := int(math.Abs(float64(score - judgeScore)))
	a.rows++
	a.absDiffSum += diff
	if diff == 0 {
		a.exactMatch++
	}
	if diff <= 1 {
		a.withinOne++
	}
}

func (a *judgeAgreement) print() {
	fmt.Println("Judge agreement:")
	fmt.Printf("  Rows graded: %d\n", a.rows)
	fmt.Printf("  Exact match: %.0f%%\n", 100*float64(a.exactMatch)/float64(a.rows))
	fmt.Printf("  Within 1 point: %.0f%%\n", 100*float64(a.withinOne)/float64(a.rows))
	fmt.Printf("  Mean absolute difference: %.2f\n", float64(a.absDiffSum)/float64(a.rows))
}
