// Package identity is the built-in identity provider: email/password
// accounts and EdDSA signed bearer tokens.
package identity

import (
	"context"
	"crypto/ed25519"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/domain"
	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/store"
	"github.com/aussiebroadwan/creatorhub/pkg/cryptox"
	"github.com/aussiebroadwan/creatorhub/pkg/idx"
	"github.com/aussiebroadwan/creatorhub/pkg/jwtx"
	"github.com/aussiebroadwan/creatorhub/pkg/slogx"
)

var (
	ErrEmailTaken         = errors.New("identity: email already registered")
	ErrInvalidCredentials = errors.New("identity: invalid email or password")
	ErrInvalidToken       = errors.New("identity: invalid token")
)

// Identity is what a verified bearer token resolves to.
type Identity struct {
	UserID string
	Email  string
}

// Token is an issued bearer credential.
type Token struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64 // seconds
	ExpiresAt   time.Time
}

// Local keeps accounts in the application store.
type Local struct {
	Store    store.Store
	Signer   *jwtx.EdDSASigner
	Verifier *jwtx.EdDSAVerifier
	Issuer   string
	TTL      time.Duration
	Clock    func() time.Time

	dummyOnce sync.Once
	dummyHash string
}

// NewLocal wires a provider that signs with key.
func NewLocal(st store.Store, key ed25519.PrivateKey, issuer string, ttl time.Duration) (*Local, error) {
	signer, err := jwtx.NewSignerEdDSA(key)
	if err != nil {
		return nil, err
	}
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}

	l := &Local{
		Store:  st,
		Signer: signer,
		Issuer: issuer,
		TTL:    ttl,
		Clock:  func() time.Time { return time.Now().UTC() },
	}
	l.Verifier = jwtx.NewVerifierEdDSA(issuer, signer.PublicKey()).WithClock(func() time.Time { return l.Clock() })
	return l, nil
}

// CreateUser registers a new account and returns its id.
func (l *Local) CreateUser(ctx context.Context, email, password, fullName string, emailConfirmed bool) (string, error) {
	log := slogx.FromContext(ctx)

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("identity: hash password: %w", err)
	}

	now := l.Clock()
	acct := domain.Account{
		ID:           idx.NewAt(now).String(),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: hash,
		FullName:     fullName,
		CreatedAt:    now,
	}
	if emailConfirmed {
		acct.EmailConfirmedAt = &now
	}

	if err := l.Store.Accounts().CreateAccount(ctx, acct); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return "", ErrEmailTaken
		}
		return "", err
	}

	log.Info("account created", slog.String("user_id", acct.ID))
	return acct.ID, nil
}

// DeleteUser removes an account. Used to undo a half-finished onboarding.
func (l *Local) DeleteUser(ctx context.Context, userID string) error {
	return l.Store.Accounts().DeleteAccount(ctx, userID)
}

// Login checks the password and issues an access token.
func (l *Local) Login(ctx context.Context, email, password string) (Token, error) {
	acct, err := l.Store.Accounts().GetAccountByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		// Spend the same argon2 time as a real check so unknown emails
		// cannot be told apart by latency.
		_ = cryptox.VerifyPassword(password, l.dummy())
		return Token{}, ErrInvalidCredentials
	}
	if err != nil {
		return Token{}, err
	}

	if err := cryptox.VerifyPassword(password, acct.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return Token{}, ErrInvalidCredentials
		}
		return Token{}, err
	}

	now := l.Clock()
	claims := jwtx.NewAccessClaims(acct.ID, acct.Email, l.Issuer, l.TTL, now)
	raw, err := l.Signer.Sign(claims)
	if err != nil {
		return Token{}, fmt.Errorf("identity: sign token: %w", err)
	}

	return Token{
		AccessToken: raw,
		TokenType:   "Bearer",
		ExpiresIn:   int64(l.TTL.Seconds()),
		ExpiresAt:   now.Add(l.TTL),
	}, nil
}

// Resolve verifies a bearer token. Tokens for deleted accounts are rejected.
func (l *Local) Resolve(ctx context.Context, bearer string) (Identity, error) {
	claims, err := l.Verifier.Verify(bearer)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	acct, err := l.Store.Accounts().GetAccountByID(ctx, claims.Subject)
	if errors.Is(err, store.ErrNotFound) {
		return Identity{}, fmt.Errorf("%w: account no longer exists", ErrInvalidToken)
	}
	if err != nil {
		return Identity{}, err
	}
	return Identity{UserID: acct.ID, Email: acct.Email}, nil
}

func (l *Local) dummy() string {
	l.dummyOnce.Do(func() {
		l.dummyHash, _ = cryptox.HashPassword(idx.New().String())
	})
	return l.dummyHash
}
