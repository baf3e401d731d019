// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/usecase"

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface. The session is a single
// in-memory slot guarded by a mutex; there is no token and no persistence.
type authService struct {
	sessions repository.SessionRepository
	logger   *slog.Logger

	mu      sync.Mutex
	current *entity.User
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	sessions repository.SessionRepository,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		sessions: sessions,
		logger:   logger,
	}
}

// Authenticate validates the credentials locally, then delegates the check to
// the store.
func (srv *authService) Authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, domainerrors.NewValidationError("Username cannot be empty.")
	}

	if password == "" {
		return nil, domainerrors.NewValidationError("Password cannot be empty.")
	}

	srv.logger.Debug("Authenticating user", slog.String("username", username))

	user, err := srv.sessions.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCredentials) {
			srv.logger.Warn("Login rejected", slog.String("username", username))

			return nil, err
		}

		return nil, errors.Wrap(err, "failed to authenticate")
	}

	srv.mu.Lock()
	srv.current = user
	srv.mu.Unlock()

	srv.logger.Info("User authenticated",
		slog.String("username", user.Username),
		slog.String("role", user.Role),
	)

	return user, nil
}

// Current returns the authenticated user, or nil.
func (srv *authService) Current() *entity.User {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.current
}

// Logout drops the in-memory session.
func (srv *authService) Logout() {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.current = nil
}
