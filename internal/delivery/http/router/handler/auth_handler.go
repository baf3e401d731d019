package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "bistro/internal/delivery/context"
	"bistro/internal/domain/repository"
	"bistro/internal/domain/service"
	"bistro/internal/wire"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler serves the login endpoint. Both rejection paths answer with an
// identical body so a caller cannot probe which usernames exist; the
// distinction lives only in the server log.
type AuthHandler struct {
	users  repository.UserRepository
	hasher service.PasswordHasher
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(users repository.UserRepository, hasher service.PasswordHasher, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		users:  users,
		hasher: hasher,
		logger: logger,
	}
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req wire.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.NoContent(http.StatusBadRequest)
	}
	if err := c.Validate(&req); err != nil {
		return c.String(http.StatusUnauthorized, "Invalid credentials")
	}

	ctx := c.Request().Context()
	log := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	log.Info("Login attempt", slog.String("username", req.Username))

	cred, ok, err := h.users.FindByUsername(ctx, req.Username)
	if err != nil {
		return errors.WithStack(err)
	}
	if !ok {
		log.Debug("Unknown username", slog.String("username", req.Username))

		return c.String(http.StatusUnauthorized, "Invalid credentials")
	}

	if !h.hasher.Check(req.Password, cred.PasswordHash) {
		log.Warn("Password mismatch", slog.String("username", req.Username))

		return c.String(http.StatusUnauthorized, "Invalid credentials")
	}

	log.Info("Login OK", slog.String("username", req.Username))

	user := cred.User()

	return c.JSON(http.StatusOK, wire.User{Username: user.Username, Role: user.Role})
}
