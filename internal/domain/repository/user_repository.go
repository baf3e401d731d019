package repository

import (
	"context"

	"bistro/internal/domain/entity"
)

// UserRepository is the store-side lookup for login credentials. Only the
// server process implements and consumes it; the password hash it exposes
// never crosses the wire.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*entity.Credential, bool, error)
}
