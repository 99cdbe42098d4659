// database.go - Handles database connection and setup

package database // Declares the package name

import ( // Import required packages
	"context" // Request-scoped sessions
	"errors"  // Sentinel errors
	"fmt"     // Error wrapping

	"go-employee-backend/models" // User model

	"github.com/rs/zerolog" // Structured logging
	"gorm.io/driver/sqlite" // SQLite driver for GORM
	"gorm.io/gorm"          // GORM ORM
)

// ErrUserNotFound is returned when no row has the requested id.
var ErrUserNotFound = errors.New("user not found")

// Store owns the database handle. It is created once in main and passed to whoever needs it.
type Store struct {
	db *gorm.DB
}

// Connect opens the database and creates the users table if it does not exist.
func Connect(dbPath string, log zerolog.Logger) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{ // Open SQLite DB
		Logger: newGormLogger(log),
	})
	if err != nil { // If error, return it
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Create-if-not-exists only. AutoMigrate would also try to alter a table created by the seed command.
	if !db.Migrator().HasTable(&models.User{}) {
		if err := db.Migrator().CreateTable(&models.User{}); err != nil {
			return nil, fmt.Errorf("failed to create users table: %w", err)
		}
	}

	return &Store{db: db}, nil
}

// Ping checks that the underlying connection pool can reach the database.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases every pooled connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Begin starts a Session bound to ctx. The caller must Close it.
func (s *Store) Begin(ctx context.Context) (*Session, error) {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin session: %w", tx.Error)
	}
	return &Session{tx: tx}, nil
}
