package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/domain"
	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/identity"
	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/store"
	"github.com/aussiebroadwan/creatorhub/pkg/idx"
	"github.com/aussiebroadwan/creatorhub/pkg/slogx"
)

type RegisterManagerInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"fullName" validate:"required,min=1"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Me is what the caller knows about itself.
type Me struct {
	UserID string
	Role   domain.Role
	Status domain.Status
}

type AuthService struct {
	Store    store.Store
	Identity IdentityProvider
	Clock    Clock
}

// RegisterManager creates an account with an approved manager profile.
func (s *AuthService) RegisterManager(ctx context.Context, in RegisterManagerInput) (string, error) {
	log := slogx.FromContext(ctx)

	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.FullName = strings.TrimSpace(in.FullName)
	if err := validateInput(in); err != nil {
		return "", err
	}

	userID, err := s.Identity.CreateUser(ctx, in.Email, in.Password, in.FullName, false)
	if err != nil {
		if errors.Is(err, identity.ErrEmailTaken) {
			log.Warn("registration attempted with taken email")
			return "", ErrEmailTaken
		}
		log.Error("failed to create account", slog.Any("error", err))
		return "", err
	}

	now := s.Clock.Now()
	profile := domain.Profile{
		ID:        idx.NewAt(now).String(),
		UserID:    userID,
		Role:      domain.RoleManager,
		Status:    domain.StatusApproved,
		FullName:  in.FullName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.Profiles().UpsertProfile(ctx, profile); err != nil {
		log.Error("failed to create manager profile",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		s.compensate(ctx, userID)
		return "", err
	}

	log.Info("manager registered", slog.String("user_id", userID))
	return userID, nil
}

// Login exchanges a password for a bearer token.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (identity.Token, error) {
	log := slogx.FromContext(ctx)

	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if err := validateInput(in); err != nil {
		return identity.Token{}, err
	}

	tok, err := s.Identity.Login(ctx, in.Email, in.Password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			log.Warn("login failed")
			return identity.Token{}, ErrInvalidCredentials
		}
		log.Error("login errored", slog.Any("error", err))
		return identity.Token{}, err
	}
	return tok, nil
}

// Me reports the caller's id, role and status.
func (s *AuthService) Me(_ context.Context, actor Actor) Me {
	return Me{UserID: actor.UserID, Role: actor.Role, Status: actor.Status}
}

// Resolve turns a bearer token into an Actor with its profile loaded.
// A token that does not verify yields ErrUnauthorized.
func (s *AuthService) Resolve(ctx context.Context, bearer string) (Actor, error) {
	who, err := s.Identity.Resolve(ctx, bearer)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidToken) {
			return Actor{}, &Error{Kind: KindUnauthorized, Message: err.Error()}
		}
		return Actor{}, err
	}

	actor := Actor{UserID: who.UserID, Email: who.Email}
	profile, err := s.Store.Profiles().GetProfileByUserID(ctx, who.UserID)
	switch {
	case err == nil:
		actor.Role = profile.Role
		actor.Status = profile.Status
	case !errors.Is(err, store.ErrNotFound):
		return Actor{}, err
	}
	return actor, nil
}

// compensate removes an account whose profile could not be written. A
// failure leaves an orphaned account, logged for reconciliation.
func (s *AuthService) compensate(ctx context.Context, userID string) {
	if err := s.Identity.DeleteUser(ctx, userID); err != nil {
		slogx.FromContext(ctx).Error("orphaned identity account",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
	}
}
