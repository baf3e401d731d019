// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"bistro/internal/domain/entity"
)

// AuthUsecase is the client-side login state machine. It is either
// unauthenticated or authenticated with exactly one user; the session lives
// only in memory for the duration of the process.
type AuthUsecase interface {
	// Authenticate validates the credentials locally, then delegates the
	// actual check to the store. On success the service transitions to
	// authenticated and returns the user. Blank username or empty password
	// fail with a validation error before any network access; a rejected
	// login fails with the generic invalid-credentials error.
	Authenticate(ctx context.Context, username, password string) (*entity.User, error)

	// Current returns the authenticated user, or nil.
	Current() *entity.User

	// Logout drops the in-memory session.
	Logout()
}
