package api

import (
	"context"
	"encoding/json"
	"net/http"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/errors"
	"bistro/internal/wire"
)

const loginPath = "/api/login"

// sessionGateway performs the remote login call. A 401 from the store maps
// to the one generic invalid-credentials error; the gateway never sees, and
// therefore can never leak, which credential was wrong.
type sessionGateway struct {
	client *Client
}

// NewSessionGateway returns the session façade over the transport client.
func NewSessionGateway(client *Client) repository.SessionRepository {
	return &sessionGateway{client: client}
}

func (g *sessionGateway) Login(ctx context.Context, username, password string) (*entity.User, error) {
	payload := wire.LoginRequest{Username: username, Password: password}

	raw, err := g.client.send(ctx, http.MethodPost, loginPath, payload)
	if err != nil {
		if IsStatus(err, http.StatusUnauthorized) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, err
	}

	var row wire.User
	if err := json.Unmarshal(raw, &row); err != nil {
		return nil, errors.WithStack(err)
	}
	user := row.Entity()

	return &user, nil
}
