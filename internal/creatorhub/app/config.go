package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/service"
	"github.com/aussiebroadwan/creatorhub/pkg/httpx"
	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port       int    `env:"PORT, default=8080"`
	AppBaseURL string `env:"APP_BASE_URL, default=http://localhost:3000"` // prefix of onboarding links

	DatabaseFile   string        `env:"DATABASE_FILE, default=creatorhub.db"`
	PepperFile     string        `env:"PEPPER_FILE, default=pepper"`
	SigningKeyFile string        `env:"SIGNING_KEY_FILE, default=signing.pem"` // PKCS8 PEM, created when missing
	Issuer         string        `env:"TOKEN_ISSUER, default=creatorhub"`
	AccessTokenTTL time.Duration `env:"ACCESS_TOKEN_TTL, default=1h"`

	InviteDefaultTTLHours int      `env:"INVITE_DEFAULT_TTL_HOURS, default=48"`
	AllowedOrigins        []string `env:"CORS_ALLOWED_ORIGINS, default=http://localhost:3000"`

	Env       string `env:"ENV, default=dev"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`
	LogFormat string `env:"LOG_FORMAT, default=json"`

	ShutdownGracePeriod  time.Duration `env:"SHUTDOWN_GRACE_PERIOD, default=10s"`
	HousekeepingInterval time.Duration `env:"HOUSEKEEPING_INTERVAL, default=0s"` // 0 disables the sweeper

	RateLimits httpx.RateLimitProfiles `env:", prefix=RATELIMIT_"`
}

// LoadConfig reads a .env file when present, then the environment.
func LoadConfig(ctx context.Context) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return loadConfig(ctx, envconfig.OsLookuper())
}

func loadConfig(ctx context.Context, lookuper envconfig.Lookuper) (Config, error) {
	cfg := Config{RateLimits: httpx.DefaultRateLimitProfiles()}
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT %d out of range", c.Port)
	}
	if c.InviteDefaultTTLHours < service.MinInviteTTLHours || c.InviteDefaultTTLHours > service.MaxInviteTTLHours {
		return fmt.Errorf("INVITE_DEFAULT_TTL_HOURS must be between %d and %d",
			service.MinInviteTTLHours, service.MaxInviteTTLHours)
	}
	if c.AccessTokenTTL <= 0 {
		return errors.New("ACCESS_TOKEN_TTL must be positive")
	}
	return nil
}
