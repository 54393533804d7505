// Package sqlite exposes the scoring engine as a SQLite user-defined
// function so SQL queries can rank rows semantically.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/ahrav/go-lmscore/internal/domain"
)

// FuncName is the SQL function name registered on each connection.
// SQLite function names are case-insensitive, so queries may spell it
// LM_SCORE.
const FuncName = "lm_score"

// Scorer evaluates content parts against a yes/no question. The
// scoring engine satisfies this interface.
type Scorer interface {
	Score(ctx context.Context, contentParts []string, question string) (domain.Score, error)
}

// RegisterDriver registers a sqlite3 driver under driverName whose
// connections expose the lm_score SQL function backed by scorer.
//
// Driver names are process-global and sql.Register panics on
// duplicates, so register each name exactly once, typically at startup:
//
//	sqlite.RegisterDriver("sqlite3_lmscore", engine)
//	db, err := sql.Open("sqlite3_lmscore", "company.db")
//	row := db.QueryRow(
//	    `SELECT LM_SCORE(subject, body, 'Is this about billing?') FROM emails LIMIT 1`)
func RegisterDriver(driverName string, scorer Scorer) {
	sql.Register(driverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			if err := conn.RegisterFunc(FuncName, scoreFunc(scorer), true); err != nil {
				return fmt.Errorf("failed to register %s function: %w", FuncName, err)
			}
			return nil
		},
	})
}

// scoreFunc adapts the scorer to SQLite's variadic calling convention.
// The last argument is the question; every preceding argument is a
// content field. SQL NULLs among the content are skipped so queries can
// pass nullable columns directly.
func scoreFunc(scorer Scorer) func(args ...any) (int64, error) {
	return func(args ...any) (int64, error) {
		if len(args) < 2 {
			return 0, fmt.Errorf("%s requires at least 2 arguments: content and question", FuncName)
		}

		question, err := argToString(args[len(args)-1])
		if err != nil {
			return 0, fmt.Errorf("%s question argument: %w", FuncName, err)
		}

		contentParts := make([]string, 0, len(args)-1)
		for _, arg := range args[:len(args)-1] {
			if arg == nil {
				continue
			}
			part, err := argToString(arg)
			if err != nil {
				return 0, fmt.Errorf("%s content argument: %w", FuncName, err)
			}
			contentParts = append(contentParts, part)
		}

		score, err := scorer.Score(context.Background(), contentParts, question)
		if err != nil {
			return 0, err
		}
		return int64(score), nil
	}
}

// argToString renders a SQLite value as text the way SQL CAST would.
func argToString(arg any) (string, error) {
	switch v := arg.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	case nil:
		return "", fmt.Errorf("unexpected NULL")
	default:
		return fmt.Sprintf("%v", v), nil
	}
}
