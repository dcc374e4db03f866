package app

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/creatorhub/pkg/httpx"
	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(context.Background(), envconfig.MapLookuper(nil))
	require.NoError(t, err)

	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, "http://localhost:3000", cfg.AppBaseURL)
	require.Equal(t, "creatorhub.db", cfg.DatabaseFile)
	require.Equal(t, time.Hour, cfg.AccessTokenTTL)
	require.Equal(t, 48, cfg.InviteDefaultTTLHours)
	require.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	require.Zero(t, cfg.HousekeepingInterval)
	require.Equal(t, httpx.DefaultRateLimitProfiles(), cfg.RateLimits)
}

func TestLoadConfigOverrides(t *testing.T) {
	cfg, err := loadConfig(context.Background(), envconfig.MapLookuper(map[string]string{
		"PORT":                      "9090",
		"APP_BASE_URL":              "https://app.example.com",
		"CORS_ALLOWED_ORIGINS":      "https://a.example.com,https://b.example.com",
		"HOUSEKEEPING_INTERVAL":     "15m",
		"RATELIMIT_STRICT_REQUESTS": "3",
		"RATELIMIT_STRICT_WINDOW":   "30s",
	}))
	require.NoError(t, err)

	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
	require.Equal(t, 15*time.Minute, cfg.HousekeepingInterval)

	require.Equal(t, 3, cfg.RateLimits.Strict.RequestsPerWindow)
	require.Equal(t, 30*time.Second, cfg.RateLimits.Strict.Window)
	require.Equal(t, httpx.StrictLimit.Burst, cfg.RateLimits.Strict.Burst)
	require.Equal(t, httpx.ModerateLimit, cfg.RateLimits.Moderate)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	for name, env := range map[string]map[string]string{
		"port":       {"PORT": "0"},
		"invite ttl": {"INVITE_DEFAULT_TTL_HOURS": "200"},
		"token ttl":  {"ACCESS_TOKEN_TTL": "-1m"},
		"not a port": {"PORT": "eighty"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := loadConfig(context.Background(), envconfig.MapLookuper(env))
			require.Error(t, err)
		})
	}
}
