package apisdk

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// Session holds a bearer token. It is safe for concurrent use.
type Session struct {
	client *Client

	mu          sync.RWMutex
	accessToken string
	expiresAt   time.Time
}

// NewSession wraps an existing access token.
func (c *Client) NewSession(accessToken string, expiresIn int64) *Session {
	return &Session{
		client:      c,
		accessToken: accessToken,
		expiresAt:   time.Now().Add(time.Duration(expiresIn) * time.Second),
	}
}

// AccessToken returns the bearer token.
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// Expired reports whether the token has passed its advertised lifetime.
func (s *Session) Expired() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !time.Now().Before(s.expiresAt)
}

func (s *Session) do(ctx context.Context, method, path string, body, out any, expectedStatus int) error {
	return s.client.doJSON(ctx, s.AccessToken(), method, path, body, out, expectedStatus)
}

// Me returns the caller's id, role and status.
func (s *Session) Me(ctx context.Context) (*MeResponse, error) {
	var out MeResponse
	if err := s.do(ctx, http.MethodGet, "/v1/auth/me", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
