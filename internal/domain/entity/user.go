// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core entity in the system, representing a single account.
// Every task in the system is owned by exactly one User.
type User struct {
	ID           int64     // Auto-incrementing numeric identifier for the user.
	Email        string    // The user's login identifier. Unique across all accounts.
	FirstName    *string   // Optional given name.
	LastName     *string   // Optional family name.
	PasswordHash string    // Argon2id hash of the password. Never serialized to any response.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}
