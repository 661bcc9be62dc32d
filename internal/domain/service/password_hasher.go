// Package service defines interfaces for the external collaborators and
// stateless helpers the use cases depend on.
package service

// PasswordHasher hashes and verifies passwords for the self-hosted identity provider.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Matches reports whether password produces hash.
	Matches(hash, password string) bool
}
