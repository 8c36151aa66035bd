// Package transport provides the HTTP client the sync engine fetches registry
// documents with. It separates the two failure classes the engine cares
// about: a network-level failure (no response obtained) surfaces as an error,
// while any received response — success or not — is returned as a Response
// for the caller to inspect.
package transport

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/modkeeper/modkeeper/pkg/constants"
	"github.com/modkeeper/modkeeper/pkg/errors"
)

// DefaultHTTPTimeout is the default timeout for HTTP requests.
var DefaultHTTPTimeout = constants.DefaultHTTPTimeout

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the response carries a success status.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Client provides HTTP client functionality for registry fetches.
type Client struct {
	http *http.Client
}

// New creates a new transport client. A nil httpClient selects a default
// client with DefaultHTTPTimeout.
func New(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultHTTPTimeout}
	}
	return &Client{http: httpClient}
}

// Get performs a GET request and slurps the body. The returned error is
// non-nil only for network-level failures where no response was obtained;
// a non-success status is reported through Response.StatusCode.
func (c *Client) Get(ctx context.Context, url string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapAPI(url, 0, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		// The response line arrived but the body did not; treat it like a
		// network-level failure so the caller's failover policy applies.
		return nil, errors.WrapIO("read", url, err)
	}

	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}

// DecodeJSON decodes a response body into the target structure, wrapping
// failures as parse errors.
func DecodeJSON(resp *Response, source string, target any) error {
	if err := json.Unmarshal(resp.Body, target); err != nil {
		return errors.WrapParse("json", source, err)
	}
	return nil
}
