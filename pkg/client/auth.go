package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/redaelm/jobdeck/pkg/domain"
)

// LoginRequest is the credential-login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the signup payload.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// googleLoginRequest exchanges a Google identity token for a session.
type googleLoginRequest struct {
	IDToken string `json:"idToken"`
}

// authResponse is the envelope all three auth endpoints answer with.
type authResponse struct {
	Success bool           `json:"success"`
	Data    domain.Session `json:"data"`
}

// Login authenticates with email and password and returns the new session.
// Auth failures surface as *HTTPError with the backend's message; no token
// is attached to this request, so they never read as session expiry.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	var resp authResponse
	if err := c.post(ctx, "/api/auth/login", LoginRequest{Email: email, Password: password}, &resp, false); err != nil {
		return nil, fmt.Errorf("client.Login: %w", err)
	}
	return &resp.Data, nil
}

// Register creates an account and returns the new session.
func (c *Client) Register(ctx context.Context, name, email, password string) (*domain.Session, error) {
	var resp authResponse
	if err := c.post(ctx, "/api/auth/register", RegisterRequest{Name: name, Email: email, Password: password}, &resp, false); err != nil {
		return nil, fmt.Errorf("client.Register: %w", err)
	}
	return &resp.Data, nil
}

// LoginWithGoogle exchanges a Google identity token for a session.
func (c *Client) LoginWithGoogle(ctx context.Context, idToken string) (*domain.Session, error) {
	var resp authResponse
	if err := c.post(ctx, "/api/auth/google", googleLoginRequest{IDToken: idToken}, &resp, false); err != nil {
		return nil, fmt.Errorf("client.LoginWithGoogle: %w", err)
	}
	return &resp.Data, nil
}

// ListUsers returns all registered users. Admin only.
func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	raw, err := c.doRequestRaw(ctx, http.MethodGet, "/api/auth/users", nil, true)
	if err != nil {
		return nil, fmt.Errorf("client.ListUsers: %w", err)
	}
	return normalizeList[domain.User](raw), nil
}
