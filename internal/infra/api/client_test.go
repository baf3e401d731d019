package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return New(server.URL, testLogger())
}

func TestClient_GetOne_NoContentIsAbsent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	raw, ok, err := client.getOne(context.Background(), "/api/drinks/1")

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, raw)
}

func TestClient_GetOne_BlankBodyIsAbsent(t *testing.T) {
	// A 200 with nothing but whitespace still counts as absent, and so does
	// a 404 with an empty body: the body check runs before the status check.
	for _, status := range []int{http.StatusOK, http.StatusNotFound} {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
			w.Write([]byte("  \n"))
		})

		raw, ok, err := client.getOne(context.Background(), "/api/drinks/1")

		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, raw)
	}
}

func TestClient_GetOne_ErrorStatusWithBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	})

	_, _, err := client.getOne(context.Background(), "/api/drinks/1")

	require.Error(t, err)
	var remote *RemoteError
	require.True(t, errors.As(err, &remote))
	assert.Equal(t, http.StatusInternalServerError, remote.Status)
	assert.Equal(t, "boom", remote.Body)
	assert.True(t, IsStatus(err, http.StatusInternalServerError))
	assert.False(t, IsStatus(err, http.StatusNotFound))
}

func TestClient_GetList_EmptyBodyYieldsNil(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	raw, err := client.getList(context.Background(), "/api/drinks")

	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestClient_Send_SetsJSONHeaders(t *testing.T) {
	var gotContentType, gotAccept string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotAccept = r.Header.Get("Accept")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{}`))
	})

	_, err := client.send(context.Background(), http.MethodPost, "/api/drinks", map[string]string{"a": "b"})

	require.NoError(t, err)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "application/json", gotAccept)
}

func TestClient_TransportErrorOnConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	server.Close() // nothing is listening anymore

	client := New(server.URL, testLogger())

	_, _, err := client.getOne(context.Background(), "/api/drinks/1")

	require.Error(t, err)
	var transport *TransportError
	assert.True(t, errors.As(err, &transport))
	assert.False(t, IsStatus(err, http.StatusNotFound))
}

func TestClient_TrimsTrailingSlash(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`[]`))
	}))
	t.Cleanup(server.Close)

	client := New(server.URL+"/", testLogger())

	_, err := client.getList(context.Background(), "/api/drinks")

	require.NoError(t, err)
	assert.Equal(t, "/api/drinks", gotPath)
}
