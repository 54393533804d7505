package sqlite

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openPlainDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	db.SetMaxOpenConns(1)
	return db
}

func TestCreateSampleDatabase(t *testing.T) {
	db := openPlainDB(t)

	summary, err := CreateSampleDatabase(db)
	require.NoError(t, err)

	assert.Equal(t, 10, summary.Emails)
	assert.Equal(t, 10, summary.Invoices)
	assert.Equal(t, 10, summary.SalesLeads)
	assert.Equal(t, 30, summary.Total())
}

func TestCreateSampleDatabaseContent(t *testing.T) {
	db := openPlainDB(t)

	_, err := CreateSampleDatabase(db)
	require.NoError(t, err)

	var subject string
	err = db.QueryRow(`SELECT subject FROM emails WHERE email = 'billing@service.com'`).Scan(&subject)
	require.NoError(t, err)
	assert.Equal(t, "Invoice for January 2025", subject)

	var amount float64
	err = db.QueryRow(`SELECT amount FROM invoices WHERE customer = 'Acme Corp'`).Scan(&amount)
	require.NoError(t, err)
	assert.InDelta(t, 1999.99, amount, 0.001)

	var description string
	err = db.QueryRow(`SELECT description FROM sales_leads WHERE client_name = 'Medical Diagnostics Lab'`).Scan(&description)
	require.NoError(t, err)
	assert.Contains(t, description, "HIPAA")
}

func TestCreateSampleDatabaseAppendsOnRerun(t *testing.T) {
	db := openPlainDB(t)

	_, err := CreateSampleDatabase(db)
	require.NoError(t, err)
	summary, err := CreateSampleDatabase(db)
	require.NoError(t, err)

	assert.Equal(t, 60, summary.Total())
}
