package repository

import (
	"context"

	"bistro/internal/domain/entity"
)

// SessionRepository performs the remote credential check. The raw password
// travels to the store, which owns the hash comparison; a rejected login
// surfaces as the generic domain error regardless of the reason.
type SessionRepository interface {
	Login(ctx context.Context, username, password string) (*entity.User, error)
}
