package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

// TokenSource provides the current bearer token, or "" when anonymous.
// The session store implements it; requests read the token at call time so
// a login or logout mid-session takes effect without rebuilding the client.
type TokenSource interface {
	Token() string
}

// StaticToken is a fixed-token TokenSource, mainly for tests and scripts.
type StaticToken string

// Token implements TokenSource.
func (t StaticToken) Token() string { return string(t) }

// ListPolicy controls how application-list fetchers treat fetch errors.
type ListPolicy int

const (
	// MaskListErrors resolves any list-fetch error to an empty list so list
	// views stay non-blocking. Callers cannot tell "zero results" from
	// "fetch failed". Session expiry is never masked.
	MaskListErrors ListPolicy = iota
	// PropagateListErrors returns list-fetch errors to the caller.
	PropagateListErrors
)

// Client is the jobdeck API client.
type Client struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client
	listPolicy ListPolicy
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithListPolicy sets how application-list fetch errors are handled.
func WithListPolicy(p ListPolicy) Option {
	return func(c *Client) { c.listPolicy = p }
}

// New creates a new API client. tokens may be nil for anonymous use.
func New(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// doRequest performs one API call. Relative paths are resolved against the
// base URL. When requireAuth is set and a token is available it is attached
// as a bearer header; a 401/403 on such a request means the stored session
// is dead and surfaces as *SessionExpiredError. A 401/403 without a token is
// an ordinary *HTTPError (e.g. a failed login attempt).
func (c *Client) doRequest(ctx context.Context, method, path string, body any, out any, requireAuth bool) error {
	raw, err := c.doRequestRaw(ctx, method, path, body, requireAuth)
	if err != nil {
		return err
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// doRequestRaw is doRequest without response decoding; list endpoints use it
// so envelope normalization can inspect the raw body.
func (c *Client) doRequestRaw(ctx context.Context, method, path string, body any, requireAuth bool) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	url := path
	if !strings.HasPrefix(path, "http") {
		url = c.baseURL + path
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	token := ""
	if requireAuth && c.tokens != nil {
		token = c.tokens.Token()
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		if requireAuth && token != "" {
			return nil, &SessionExpiredError{StatusCode: resp.StatusCode}
		}
	}
	if resp.StatusCode >= 400 {
		return nil, c.errorFromBody(resp)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20)) // 10 MB max body
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return raw, nil
}

// errorFromBody builds an HTTPError from an error response, preferring the
// backend's human-readable message. Parse failures on error bodies fall back
// to a generic message instead of propagating.
func (c *Client) errorFromBody(resp *http.Response) error {
	respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1 MB max error body
	if readErr != nil {
		return &HTTPError{StatusCode: resp.StatusCode, Message: "request failed"}
	}
	var apiErr struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(respBody, &apiErr) == nil {
		if apiErr.Message != "" {
			return &HTTPError{StatusCode: resp.StatusCode, Message: apiErr.Message}
		}
		if apiErr.Error != "" {
			return &HTTPError{StatusCode: resp.StatusCode, Message: apiErr.Error}
		}
	}
	return &HTTPError{StatusCode: resp.StatusCode, Message: "request failed"}
}

func (c *Client) get(ctx context.Context, path string, out any, requireAuth bool) error {
	return c.doRequest(ctx, http.MethodGet, path, nil, out, requireAuth)
}

func (c *Client) post(ctx context.Context, path string, body, out any, requireAuth bool) error {
	return c.doRequest(ctx, http.MethodPost, path, body, out, requireAuth)
}
