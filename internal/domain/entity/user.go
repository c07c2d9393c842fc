// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core entity in the system, representing a single account.
// PasswordHash is the only credential material that exists at rest; the raw
// password is discarded as soon as it has been hashed or checked.
type User struct {
	ID           int64     // Auto-incrementing primary key assigned by the database.
	Email        string    // The user's login identifier. Unique at the storage layer.
	PasswordHash string    // Bcrypt hash of the user's password. Never serialized to clients.
	FirstName    string    // The user's given name.
	LastName     string    // The user's family name.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// Identity returns the token-embeddable identity of this user.
func (u *User) Identity() Identity {
	return Identity{UserID: u.ID, Email: u.Email}
}
