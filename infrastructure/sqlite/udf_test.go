package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/go-lmscore/internal/domain"
)

// stubScorer returns a fixed score and records received arguments.
type stubScorer struct {
	mu       sync.Mutex
	score    domain.Score
	err      error
	content  [][]string
	question []string
}

func (s *stubScorer) Score(_ context.Context, contentParts []string, question string) (domain.Score, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, s.err
	}
	s.content = append(s.content, contentParts)
	s.question = append(s.question, question)
	return s.score, nil
}

// Driver registrations are process-global, so each test registers a
// unique name.
var driverSeq atomic.Int64

func openTestDB(t *testing.T, scorer Scorer) *sql.DB {
	t.Helper()

	name := fmt.Sprintf("sqlite3_lmscore_test_%d", driverSeq.Add(1))
	RegisterDriver(name, scorer)

	db, err := sql.Open(name, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	// In-memory databases live per connection; pin to one.
	db.SetMaxOpenConns(1)
	return db
}

func TestUDFScoresRow(t *testing.T) {
	scorer := &stubScorer{score: 8}
	db := openTestDB(t, scorer)

	_, err := db.Exec(`CREATE TABLE messages (subject TEXT, body TEXT)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO messages VALUES ('Invoice due', 'Please pay by Friday')`)
	require.NoError(t, err)

	var score int
	err = db.QueryRow(
		`SELECT LM_SCORE(subject, body, 'Is this about billing?') FROM messages`,
	).Scan(&score)
	require.NoError(t, err)

	assert.Equal(t, 8, score)
	require.Len(t, scorer.content, 1)
	assert.Equal(t, []string{"Invoice due", "Please pay by Friday"}, scorer.content[0])
	assert.Equal(t, "Is this about billing?", scorer.question[0])
}

func TestUDFLastArgumentIsQuestion(t *testing.T) {
	scorer := &stubScorer{score: 5}
	db := openTestDB(t, scorer)

	var score int
	err := db.QueryRow(`SELECT lm_score('a', 'b', 'c', 'Is it so?')`).Scan(&score)
	require.NoError(t, err)

	require.Len(t, scorer.content, 1)
	assert.Equal(t, []string{"a", "b", "c"}, scorer.content[0])
	assert.Equal(t, "Is it so?", scorer.question[0])
}

func TestUDFSkipsNullContent(t *testing.T) {
	scorer := &stubScorer{score: 7}
	db := openTestDB(t, scorer)

	var score int
	err := db.QueryRow(`SELECT lm_score('present', NULL, 'Is it so?')`).Scan(&score)
	require.NoError(t, err)

	require.Len(t, scorer.content, 1)
	assert.Equal(t, []string{"present"}, scorer.content[0])
}

func TestUDFConvertsNumericContent(t *testing.T) {
	scorer := &stubScorer{score: 6}
	db := openTestDB(t, scorer)

	var score int
	err := db.QueryRow(`SELECT lm_score('POS System', 1999.99, 'Is this expensive?')`).Scan(&score)
	require.NoError(t, err)

	require.Len(t, scorer.content, 1)
	assert.Equal(t, []string{"POS System", "1999.99"}, scorer.content[0])
}

func TestUDFRequiresTwoArguments(t *testing.T) {
	scorer := &stubScorer{score: 5}
	db := openTestDB(t, scorer)

	var score int
	err := db.QueryRow(`SELECT lm_score('only the question?')`).Scan(&score)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "at least 2 arguments"))
}

func TestUDFPropagatesScorerError(t *testing.T) {
	scorer := &stubScorer{err: errors.New("endpoint unreachable")}
	db := openTestDB(t, scorer)

	var score int
	err := db.QueryRow(`SELECT lm_score('content', 'Is it so?')`).Scan(&score)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "endpoint unreachable")
}
