// Package service defines contracts for infrastructure capabilities the use
// cases need without binding them to a concrete provider.
package service

// PasswordHasher provides password hashing functionality.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether the plaintext password matches the hash.
	Check(password, hash string) bool
}
