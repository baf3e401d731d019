// Package service defines interfaces for stateless domain logic that does
// not belong to a single entity.
package service

// PasswordHasher is the credential verifier seam. The store checks login
// passwords through it, so the domain never binds to a concrete algorithm
// and the plaintext never outlives the comparison.
type PasswordHasher interface {
	// Hash derives a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether a plaintext password matches a stored hash.
	Check(password, hash string) bool
}
