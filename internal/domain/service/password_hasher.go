// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a
// single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying construction (keyed hash with per-entry salt),
// keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted, keyed hash from a plaintext password. The salt
	// travels inside the returned value, so no separate storage is needed.
	Hash(password string) (string, error)

	// Check reports whether the plaintext password matches the stored hash.
	// The comparison is constant-time.
	Check(hashed, password string) bool

	// ValidateStrength checks the password against the configured complexity
	// rules before hashing.
	ValidateStrength(password string) error
}
