// schema.go - Raw SQL shared by the seed command and the service

package models // Declares the package name

// CreateUsersTableSQL creates the users table when it does not exist yet.
// Column types and NOT NULL rules match the User gorm tags.
const CreateUsersTableSQL = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	password TEXT NOT NULL
)`

// CreateUsersEmailIndexSQL uses the index name gorm derives for User.Email.
const CreateUsersEmailIndexSQL = `CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)`

// DeleteDuplicateEmailsSQL keeps the lowest id of every email group.
const DeleteDuplicateEmailsSQL = `DELETE FROM users WHERE id NOT IN (SELECT MIN(id) FROM users GROUP BY email)`
