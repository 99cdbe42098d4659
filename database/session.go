// session.go - Request-scoped unit of work over the users table

package database // Declares the package name

import ( // Import required packages
	"errors" // Not-found mapping
	"fmt"    // Error wrapping

	"go-employee-backend/models" // User model

	"gorm.io/gorm" // GORM ORM
)

// Session wraps one transaction. Writes are only visible to others after Commit.
// Close must always be called; it rolls back whatever was not committed.
type Session struct {
	tx       *gorm.DB
	finished bool
}

// Commit persists the session's writes.
func (s *Session) Commit() error {
	if s.finished {
		return gorm.ErrInvalidTransaction
	}
	s.finished = true
	if err := s.tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// Close releases the session. Safe to call after Commit and more than once.
func (s *Session) Close() error {
	if s.finished {
		return nil
	}
	s.finished = true
	return s.tx.Rollback().Error
}

// CreateUser inserts u and fills in its assigned ID.
func (s *Session) CreateUser(u *models.User) error {
	if err := s.tx.Create(u).Error; err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// ListUsers returns every row in storage order. The result is never nil.
func (s *Session) ListUsers() ([]models.User, error) {
	users := []models.User{}
	if err := s.tx.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	return users, nil
}

// GetUser returns the row with the given id or ErrUserNotFound.
func (s *Session) GetUser(id uint) (*models.User, error) {
	var user models.User
	err := s.tx.Where("id = ?", id).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user %d: %w", id, err)
	}
	return &user, nil
}

// RemoveDuplicateUsers deletes every row whose id is not the smallest id of its email group
// and reports how many rows were removed.
func (s *Session) RemoveDuplicateUsers() (int64, error) {
	keep := s.tx.Model(&models.User{}).Select("MIN(id)").Group("email")
	res := s.tx.Where("id NOT IN (?)", keep).Delete(&models.User{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete duplicate users: %w", res.Error)
	}
	return res.RowsAffected, nil
}
