// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., argon2id), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password. Each call uses
	// a fresh random salt, so two hashes of the same plaintext differ.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	// The comparison is constant-time with respect to the derived key.
	Check(password, hash string) bool

	// ValidatePasswordStrength enforces the signup password policy.
	ValidatePasswordStrength(password string) error
}
