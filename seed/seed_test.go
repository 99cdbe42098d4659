// seed_test.go - Tests for the seed sequence
// Run with: go test ./...

package seed

import (
	"bytes"
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"go-employee-backend/database"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB opens an empty database file under the test's temp dir
func setupTestDB(t *testing.T) (*sql.DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "employee.db")
	db, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, path
}

func TestRunPrintsEverySampleRow(t *testing.T) {
	db, _ := setupTestDB(t)
	var out bytes.Buffer

	require.NoError(t, Run(context.Background(), db, &out, zerolog.Nop()))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, len(SampleUsers))
	assert.Equal(t, "(1, 'Alok Sethi', 'aloksethi2004@gmail.com', 'password1')", lines[0])
	assert.Equal(t, "(7, 'Swarna Sethi', 'swarnas@example.com', 'password7')", lines[6])
}

func TestRunTwiceCollapsesOntoFirstRun(t *testing.T) {
	db, _ := setupTestDB(t)
	var first, second bytes.Buffer

	require.NoError(t, Run(context.Background(), db, &first, zerolog.Nop()))
	require.NoError(t, Run(context.Background(), db, &second, zerolog.Nop())) // Table creation is idempotent

	// The second run's seven inserts are duplicates of the first run's and get removed
	assert.Equal(t, first.String(), second.String())

	var maxID int
	require.NoError(t, db.QueryRow(`SELECT MAX(id) FROM users`).Scan(&maxID))
	assert.Equal(t, 7, maxID)
}

func TestRunKeepsLowestIDPerEmail(t *testing.T) {
	db, _ := setupTestDB(t)
	require.NoError(t, CreateTable(context.Background(), db))
	_, err := db.Exec(`INSERT INTO users (name, email, password) VALUES ('Early', 'swarnas@example.com', 'x')`)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), db, &out, zerolog.Nop()))

	assert.Contains(t, out.String(), "(1, 'Early', 'swarnas@example.com', 'x')")
	assert.NotContains(t, out.String(), "'Swarna Sethi'")
	assert.Len(t, strings.Split(strings.TrimSpace(out.String()), "\n"), len(SampleUsers))
}

func TestRunLogsRemovedCount(t *testing.T) {
	db, _ := setupTestDB(t)

	var first bytes.Buffer
	require.NoError(t, Run(context.Background(), db, &bytes.Buffer{}, zerolog.New(&first)))
	assert.Contains(t, first.String(), `"removed":0`) // Sample emails are all distinct

	var second bytes.Buffer
	require.NoError(t, Run(context.Background(), db, &bytes.Buffer{}, zerolog.New(&second)))
	assert.Contains(t, second.String(), `"removed":7`) // Every row of the second run duplicates the first
	assert.Contains(t, second.String(), "Duplicates deleted successfully")
}

func TestSchemaIsSharedWithService(t *testing.T) {
	db, path := setupTestDB(t)
	require.NoError(t, Run(context.Background(), db, &bytes.Buffer{}, zerolog.Nop()))

	// The service opens the same file without touching the existing table
	store, err := database.Connect(path, zerolog.Nop())
	require.NoError(t, err)
	defer store.Close()

	session, err := store.Begin(context.Background())
	require.NoError(t, err)
	defer session.Close()

	users, err := session.ListUsers()
	require.NoError(t, err)
	assert.Len(t, users, len(SampleUsers))
}

func TestRunFailsOnClosedDB(t *testing.T) {
	db, _ := setupTestDB(t)
	require.NoError(t, db.Close())

	err := Run(context.Background(), db, &bytes.Buffer{}, zerolog.Nop())
	assert.Error(t, err) // Closed handle fails on the first step
}
