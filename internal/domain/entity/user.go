package entity

import "strings"

// Roles a user can hold. The store is the authority on role assignment.
const (
	RoleAdmin   = "ADMIN"
	RoleCashier = "CASHIER"
)

// User is the client-visible identity returned by a successful login.
// The password hash never leaves the store and is never held here.
type User struct {
	Username string
	Role     string
}

// IsAdmin reports whether the user holds the admin role. The comparison is
// case-insensitive to match the store's historical data.
func (u User) IsAdmin() bool {
	return strings.EqualFold(u.Role, RoleAdmin)
}

// Credential is the store-side view of a user: the login identifier and the
// opaque password hash the credential verifier compares against. It exists
// only inside the server process.
type Credential struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         string
}

// User strips the credential down to its client-visible projection.
func (c Credential) User() User {
	return User{Username: c.Username, Role: c.Role}
}
