// seed.go - Creates the users table, loads the sample employees and removes duplicate emails

package seed // Declares the package name

import ( // Import required packages
	"context"      // Cancellation from the CLI
	"database/sql" // Raw SQL access
	"fmt"          // Error wrapping and row output
	"io"           // Output destination

	"go-employee-backend/models" // User model and shared DDL

	_ "github.com/mattn/go-sqlite3" // Registers the "sqlite3" driver
	"github.com/rs/zerolog"         // Structured logging
)

// SampleUsers are inserted on every run.
var SampleUsers = []models.User{
	{Name: "Alok Sethi", Email: "aloksethi2004@gmail.com", Password: "password1"},
	{Name: "Akshatha Pai", Email: "akshathap@example.com", Password: "password2"},
	{Name: "Adyansh RajAS", Email: "adyanshr@example.com", Password: "password3"},
	{Name: "Dhruba Charan Sethi", Email: "dhrubas@example.com", Password: "password4"},
	{Name: "Premalata Sethi", Email: "premalatas@example.com", Password: "password5"},
	{Name: "Minati Sethi", Email: "minatis@example.com", Password: "password6"},
	{Name: "Swarna Sethi", Email: "swarnas@example.com", Password: "password7"},
}

// Open opens a SQLite database at path and checks the connection.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Run executes the seed sequence against db and writes every remaining row to out.
// Everything after table creation happens in one transaction, committed at the end.
func Run(ctx context.Context, db *sql.DB, out io.Writer, log zerolog.Logger) error {
	// STEP 1: Create the table if it does not exist yet
	if err := CreateTable(ctx, db); err != nil {
		return err
	}
	log.Info().Msg("Table created successfully")

	tx, err := db.BeginTx(ctx, nil) // Steps 2 to 4 commit together
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // No-op after Commit

	// STEP 2: Insert the sample employees
	for _, u := range SampleUsers {
		if _, err := tx.ExecContext(ctx, `INSERT INTO users (name, email, password) VALUES (?, ?, ?)`, u.Name, u.Email, u.Password); err != nil {
			return fmt.Errorf("failed to insert %s: %w", u.Email, err)
		}
	}
	log.Info().Int("rows", len(SampleUsers)).Msg("Data inserted successfully")

	// STEP 3: Keep only the lowest id of every email
	res, err := tx.ExecContext(ctx, models.DeleteDuplicateEmailsSQL)
	if err != nil {
		return fmt.Errorf("failed to delete duplicates: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to count deleted duplicates: %w", err)
	}
	log.Info().Int64("removed", removed).Msg("Duplicates deleted successfully")

	// STEP 4: Print what is left, then commit
	users, err := listUsers(ctx, tx)
	if err != nil {
		return err
	}
	for _, u := range users {
		if _, err := fmt.Fprintln(out, FormatRow(u)); err != nil {
			return fmt.Errorf("failed to print row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// CreateTable creates the users table and its email index if missing.
func CreateTable(ctx context.Context, db *sql.DB) error {
	for _, stmt := range []string{models.CreateUsersTableSQL, models.CreateUsersEmailIndexSQL} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create users table: %w", err)
		}
	}
	return nil
}

// FormatRow renders a row as (id, 'name', 'email', 'password').
func FormatRow(u models.User) string {
	return fmt.Sprintf("(%d, '%s', '%s', '%s')", u.ID, u.Name, u.Email, u.Password)
}

// listUsers reads every row inside tx in storage order.
func listUsers(ctx context.Context, tx *sql.Tx) ([]models.User, error) {
	rows, err := tx.QueryContext(ctx, `SELECT id, name, email, password FROM users`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Password); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return users, nil
}
