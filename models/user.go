// user.go - Defines the User model for the database

package models // Declares the package name

// User struct represents one employee row in the users table.
// The gorm tags describe the same shape as CreateUsersTableSQL.
type User struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"` // Unique user ID (auto-assigned, strictly increasing)
	Name     string `gorm:"not null" json:"name"`               // Employee name (free-form)
	Email    string `gorm:"not null;index" json:"email"`        // Email (indexed, duplicates allowed)
	Password string `gorm:"not null" json:"password"`           // Plain-text password
}

// TableName pins the table name so both the service and the seed command use "users".
func (User) TableName() string {
	return "users"
}

// UserInput is the request body accepted when creating a user.
// Fields are pointers so that "required" only rejects a missing key; an empty string is valid.
type UserInput struct {
	Name     *string `json:"name" binding:"required"`     // Name (required, may be empty)
	Email    *string `json:"email" binding:"required"`    // Email (required, not checked for format)
	Password *string `json:"password" binding:"required"` // Password (required)
}

// ToUser converts the input into a User without an ID. Binding guarantees the fields are set.
func (in UserInput) ToUser() User {
	return User{Name: *in.Name, Email: *in.Email, Password: *in.Password}
}
