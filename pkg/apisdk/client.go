package apisdk

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to the public endpoints and opens Sessions.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client with a 10 second request timeout.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Register creates a manager account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	var out RegisterResponse
	if err := c.doJSON(ctx, "", http.MethodPost, "/v1/auth/register", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges email and password for an authenticated Session.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var tok TokenResponse
	err := c.doJSON(ctx, "", http.MethodPost, "/v1/auth/login",
		LoginRequest{Email: email, Password: password}, &tok, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return c.NewSession(tok.AccessToken, tok.ExpiresIn), nil
}

// VerifyInvite checks an onboarding token without consuming it.
func (c *Client) VerifyInvite(ctx context.Context, token string) (*VerifyResponse, error) {
	var out VerifyResponse
	path := "/v1/onboarding/verify?" + url.Values{"token": {token}}.Encode()
	if err := c.doJSON(ctx, "", http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// CompleteInvite redeems an onboarding token and creates the influencer account.
func (c *Client) CompleteInvite(ctx context.Context, req CompleteRequest) (*CompleteResponse, error) {
	var out CompleteResponse
	if err := c.doJSON(ctx, "", http.MethodPost, "/v1/onboarding/complete", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetLiveness checks if the service is alive.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.doJSON(ctx, "", http.MethodGet, "/livez", nil, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

// GetReadiness checks if the service is ready.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.doJSON(ctx, "", http.MethodGet, "/readyz", nil, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}
