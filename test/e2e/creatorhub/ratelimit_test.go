package creatorhub_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/creatorhub/pkg/apisdk"
	"github.com/stretchr/testify/require"
)

// TestRateLimitLogin verifies the strict profile (5 req/min) on login.
func TestRateLimitLogin(t *testing.T) {
	client := setupContainer(t, nil)
	ctx := t.Context()

	for i := range 5 {
		_, err := client.Login(ctx, "nobody@example.com", "wrong-password")
		requireAPIError(t, err, http.StatusUnauthorized, apisdk.ErrorCodeUnauthorized)
		t.Logf("attempt %d rejected with 401", i+1)
	}

	_, err := client.Login(ctx, "nobody@example.com", "wrong-password")
	requireAPIError(t, err, http.StatusTooManyRequests, apisdk.ErrorCodeRateLimited)
}

func TestRateLimitOverride(t *testing.T) {
	client := setupContainer(t, map[string]string{
		"RATELIMIT_STRICT_REQUESTS": "1",
		"RATELIMIT_STRICT_BURST":    "1",
	})
	ctx := t.Context()

	req := apisdk.RegisterRequest{Email: "a@example.com", Password: managerPassword, FullName: "A"}
	_, err := client.Register(ctx, req)
	require.NoError(t, err)

	req.Email = "b@example.com"
	_, err = client.Register(ctx, req)
	requireAPIError(t, err, http.StatusTooManyRequests, apisdk.ErrorCodeRateLimited)
}
