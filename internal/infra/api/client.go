// Package api implements the remote side of the domain repository contracts:
// a transport client that normalizes the store's HTTP status and body policy,
// and one typed gateway per resource kind built on top of it.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"bistro/internal/errors"
)

// connectTimeout bounds connection establishment only. There is no overall
// request deadline and no automatic retry; a failed call is reported once.
const connectTimeout = 5 * time.Second

// RemoteError is a non-success status from the store. The status and raw
// body are kept for diagnostics; callers never branch on raw codes outside
// this package.
type RemoteError struct {
	Method string
	Path   string
	Status int
	Body   string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s %s failed with HTTP %d body: %s", e.Method, e.Path, e.Status, e.Body)
}

// TransportError is a connection or IO failure before any status was
// obtainable: refused connection, canceled wait, malformed response.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s transport failure: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Client executes single HTTP exchanges against the catalog store. It holds
// no mutable per-call state and is safe for concurrent reuse.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// New creates a client for the store at baseURL. A trailing slash is
// trimmed to avoid double slashes in request paths.
func New(baseURL string, logger *slog.Logger) *Client {
	return NewWithConnectTimeout(baseURL, logger, connectTimeout)
}

// NewWithConnectTimeout creates a client with its connect timeout taken from
// configuration. A non-positive timeout falls back to the default.
func NewWithConnectTimeout(baseURL string, logger *slog.Logger, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = connectTimeout
	}

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: timeout}).DialContext,
			},
		},
		logger: logger,
	}
}

// do executes one exchange and returns the status and body. Failures before
// a status was obtained come back as TransportError.
func (c *Client) do(ctx context.Context, method, path string, body any) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, nil, errors.Wrapf(err, "encode %s %s payload", method, path)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return 0, nil, &TransportError{Method: method, Path: path, Err: err}
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return 0, nil, &TransportError{Method: method, Path: path, Err: err}
	}

	c.logger.Debug("store exchange",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", res.StatusCode),
	)

	return res.StatusCode, raw, nil
}

// getOne executes a read expected to return zero or one object. A 204 or a
// blank body yields absent (nil, false, nil); any other non-2xx status is a
// RemoteError.
func (c *Client) getOne(ctx context.Context, path string) ([]byte, bool, error) {
	status, raw, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, false, err
	}

	if status == http.StatusNoContent || len(bytes.TrimSpace(raw)) == 0 {
		return nil, false, nil
	}
	if status < 200 || status >= 300 {
		return nil, false, &RemoteError{Method: http.MethodGet, Path: path, Status: status, Body: string(raw)}
	}

	return raw, true, nil
}

// getList executes a read expected to return a collection. The empty cases
// that would be "absent" for a single object yield a nil body here, which
// gateways turn into an empty ordered sequence.
func (c *Client) getList(ctx context.Context, path string) ([]byte, error) {
	status, raw, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	if status == http.StatusNoContent || len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	if status < 200 || status >= 300 {
		return nil, &RemoteError{Method: http.MethodGet, Path: path, Status: status, Body: string(raw)}
	}

	return raw, nil
}

// send executes a create or update. Success is any 2xx; the body is returned
// for the caller to decode.
func (c *Client) send(ctx context.Context, method, path string, body any) ([]byte, error) {
	status, raw, err := c.do(ctx, method, path, body)
	if err != nil {
		return nil, err
	}

	if status < 200 || status >= 300 {
		return nil, &RemoteError{Method: method, Path: path, Status: status, Body: string(raw)}
	}

	return raw, nil
}

// delete executes a delete. Success is any 2xx and yields nothing.
func (c *Client) delete(ctx context.Context, path string) error {
	status, raw, err := c.do(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return err
	}

	if status < 200 || status >= 300 {
		return &RemoteError{Method: http.MethodDelete, Path: path, Status: status, Body: string(raw)}
	}

	return nil
}

// IsStatus reports whether err is a RemoteError carrying the given status.
func IsStatus(err error, status int) bool {
	var remote *RemoteError
	if !errors.As(err, &remote) {
		return false
	}

	return remote.Status == status
}
