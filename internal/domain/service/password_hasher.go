// Package service defines the contracts of domain services that are not owned by a single entity:
// credentials, session tokens, presence, realtime push and text sanitizing.
package service

// PasswordHasher hashes account passwords and checks login attempts against stored hashes.
type PasswordHasher interface {
	// Hash returns a salted hash of password.
	Hash(password string) (string, error)

	// Check reports whether password matches hash. A malformed hash never matches.
	Check(password, hash string) bool
}
