package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/wire"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoginServer(t *testing.T) *Client {
	t.Helper()

	return newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, loginPath, r.URL.Path)

		var req wire.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		if req.Username != "admin" || req.Password != "secret123" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte("Invalid credentials"))

			return
		}
		_ = json.NewEncoder(w).Encode(wire.User{Username: "admin", Role: "ADMIN"})
	})
}

func TestSessionGateway_Login_Success(t *testing.T) {
	gateway := NewSessionGateway(newLoginServer(t))

	user, err := gateway.Login(context.Background(), "admin", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
	assert.Equal(t, "ADMIN", user.Role)
	assert.True(t, user.IsAdmin())
}

func TestSessionGateway_Login_RejectionsAreIdentical(t *testing.T) {
	gateway := NewSessionGateway(newLoginServer(t))

	_, wrongPass := gateway.Login(context.Background(), "admin", "wrongpass")
	_, wrongUser := gateway.Login(context.Background(), "nosuchuser", "secret123")

	require.Error(t, wrongPass)
	require.Error(t, wrongUser)
	assert.True(t, errors.Is(wrongPass, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(wrongUser, domainerrors.ErrInvalidCredentials))
	assert.Equal(t, wrongPass.Error(), wrongUser.Error())
}

func TestSessionGateway_Login_ServerFaultIsNotInvalidCredentials(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	gateway := NewSessionGateway(client)

	_, err := gateway.Login(context.Background(), "admin", "secret123")
	require.Error(t, err)
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	assert.True(t, IsStatus(err, http.StatusInternalServerError))
}
