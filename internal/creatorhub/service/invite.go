package service

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/domain"
	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/identity"
	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/store"
	"github.com/aussiebroadwan/creatorhub/pkg/cryptox"
	"github.com/aussiebroadwan/creatorhub/pkg/idx"
	"github.com/aussiebroadwan/creatorhub/pkg/slogx"
)

const (
	DefaultInviteTTLHours = 48
	MinInviteTTLHours     = 1
	MaxInviteTTLHours     = 168

	// minTokenLength rejects obviously truncated tokens before a lookup.
	minTokenLength = 10
)

type CreateInviteInput struct {
	InfluencerID   string `json:"influencerId" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	ExpiresInHours *int   `json:"expiresInHours,omitempty"`
}

type CompleteInviteInput struct {
	Token    string  `json:"token" validate:"required,min=10"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	FullName *string `json:"fullName,omitempty"`
}

// IssuedInvite is returned once; the raw token only exists inside URL.
type IssuedInvite struct {
	URL       string
	ExpiresAt time.Time
}

type InviteCheck struct {
	Valid bool
	Email string
}

// InviteService runs the onboarding invite lifecycle: issue, verify,
// complete and sweep.
type InviteService struct {
	Store    store.Store
	Identity IdentityProvider
	Clock    Clock

	// AppBaseURL prefixes the onboarding link, e.g. https://app.example.com.
	AppBaseURL string
	// DefaultTTLHours applies when an invite is issued without expiresInHours.
	DefaultTTLHours int
}

// Issue mints an invite for one of the actor's roster entries and records
// the invite email as the entry's contact email.
func (s *InviteService) Issue(ctx context.Context, actor Actor, in CreateInviteInput) (IssuedInvite, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input.
	in.InfluencerID = strings.TrimSpace(in.InfluencerID)
	in.Email = strings.TrimSpace(in.Email)
	if err := validateInput(in); err != nil {
		return IssuedInvite{}, err
	}

	hours := s.DefaultTTLHours
	if hours <= 0 {
		hours = DefaultInviteTTLHours
	}
	if in.ExpiresInHours != nil {
		hours = *in.ExpiresInHours
	}
	if hours < MinInviteTTLHours || hours > MaxInviteTTLHours {
		return IssuedInvite{}, invalid("expiresInHours", "must be between 1 and 168")
	}

	// 2. The roster entry must exist and belong to the actor.
	entry, err := s.Store.Roster().GetRosterEntry(ctx, in.InfluencerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("invite requested for unknown roster entry",
				slog.String("influencer_id", in.InfluencerID),
			)
			return IssuedInvite{}, notFound("roster entry")
		}
		log.Error("failed to fetch roster entry", slog.Any("error", err))
		return IssuedInvite{}, err
	}
	if entry.OwnerUserID != actor.UserID {
		log.Warn("invite requested for foreign roster entry",
			slog.String("influencer_id", entry.ID),
		)
		return IssuedInvite{}, ErrNotYourRosterEntry
	}

	// 3. Generate the token. Only its fingerprint is stored.
	token, err := cryptox.GenerateHexToken(cryptox.TokenSize192)
	if err != nil {
		log.Error("failed to generate invite token", slog.Any("error", err))
		return IssuedInvite{}, err
	}

	now := s.Clock.Now()
	invite := domain.InviteToken{
		ID:           idx.NewAt(now).String(),
		TokenHash:    cryptox.FingerprintToken(token),
		InfluencerID: entry.ID,
		Email:        in.Email,
		ExpiresAt:    now.Add(time.Duration(hours) * time.Hour),
		CreatedAt:    now,
	}

	// 4. Store the invite and the contact email together.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Invites().CreateInvite(ctx, invite); err != nil {
			return err
		}
		return tx.Roster().SetContactEmail(ctx, entry.ID, in.Email, now)
	})
	if err != nil {
		log.Error("failed to store invite",
			slog.String("invite_id", invite.ID),
			slog.Any("error", err),
		)
		return IssuedInvite{}, err
	}

	log.Info("onboarding invite issued",
		slog.String("invite_id", invite.ID),
		slog.String("influencer_id", entry.ID),
		slog.Time("expires_at", invite.ExpiresAt),
	)

	return IssuedInvite{URL: s.onboardingURL(token), ExpiresAt: invite.ExpiresAt}, nil
}

// Verify reports whether token is live. Absent and expired tokens look the same.
func (s *InviteService) Verify(ctx context.Context, token string) (InviteCheck, error) {
	token = strings.TrimSpace(token)
	if len(token) < minTokenLength {
		return InviteCheck{}, invalid("token", "must be at least 10 characters")
	}

	invite, err := s.Store.Invites().GetLiveInviteByTokenHash(ctx, cryptox.FingerprintToken(token), s.Clock.Now())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return InviteCheck{Valid: false}, nil
		}
		slogx.FromContext(ctx).Error("failed to look up invite", slog.Any("error", err))
		return InviteCheck{}, err
	}
	return InviteCheck{Valid: true, Email: invite.Email}, nil
}

// Complete redeems an invite: it creates a confirmed account, gives it an
// approved influencer profile and links the roster entry to it.
//
// Account creation happens outside the store transaction. If the
// transaction fails the account is deleted again; if that also fails the
// orphaned user id is logged at error level.
func (s *InviteService) Complete(ctx context.Context, in CompleteInviteInput) (string, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input.
	in.Token = strings.TrimSpace(in.Token)
	in.Email = strings.TrimSpace(in.Email)
	in.FullName = emptyToNil(in.FullName)
	if err := validateInput(in); err != nil {
		return "", err
	}

	// 2. The token must be live and issued for this email.
	now := s.Clock.Now()
	invite, err := s.Store.Invites().GetLiveInviteByTokenHash(ctx, cryptox.FingerprintToken(in.Token), now)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("invite completion with invalid or expired token")
			return "", ErrInviteInvalid
		}
		log.Error("failed to look up invite", slog.Any("error", err))
		return "", err
	}
	if !strings.EqualFold(invite.Email, in.Email) {
		log.Warn("invite completion with mismatched email", slog.String("invite_id", invite.ID))
		return "", ErrEmailMismatch
	}

	// 3. The roster entry must still be unclaimed.
	entry, err := s.Store.Roster().GetRosterEntry(ctx, invite.InfluencerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Error("invite references missing roster entry",
				slog.String("invite_id", invite.ID),
				slog.String("influencer_id", invite.InfluencerID),
			)
			return "", notFound("roster entry")
		}
		return "", err
	}
	if entry.IsLinked() {
		log.Warn("invite completion for already linked roster entry",
			slog.String("invite_id", invite.ID),
			slog.String("influencer_id", entry.ID),
		)
		return "", ErrAlreadyLinked
	}

	fullName := entry.Handle
	if in.FullName != nil {
		fullName = *in.FullName
	}

	// 4. Create the account. The invite stands in for email confirmation.
	userID, err := s.Identity.CreateUser(ctx, in.Email, in.Password, fullName, true)
	if err != nil {
		if errors.Is(err, identity.ErrEmailTaken) {
			log.Warn("invite completion with taken email", slog.String("invite_id", invite.ID))
			return "", ErrEmailTaken
		}
		log.Error("failed to create account", slog.Any("error", err))
		return "", err
	}

	// 5. Consume, create profile and link in one transaction.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Invites().ConsumeInvite(ctx, invite.ID, now); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInviteInvalid
			}
			return err
		}

		if err := tx.Profiles().UpsertProfile(ctx, influencerProfile(userID, fullName, entry, now)); err != nil {
			return err
		}

		if err := tx.Roster().LinkUnlinked(ctx, entry.ID, userID, invite.Email, now); err != nil {
			switch {
			case errors.Is(err, store.ErrConflict):
				return ErrAlreadyLinked
			case errors.Is(err, store.ErrNotFound):
				return notFound("roster entry")
			}
			return err
		}
		return nil
	})
	if err != nil {
		if KindOf(err) == "" {
			log.Error("invite completion failed",
				slog.String("invite_id", invite.ID),
				slog.Any("error", err),
			)
		} else {
			log.Warn("invite completion rejected",
				slog.String("invite_id", invite.ID),
				slog.Any("error", err),
			)
		}
		if derr := s.Identity.DeleteUser(ctx, userID); derr != nil {
			log.Error("orphaned identity account after failed onboarding",
				slog.String("user_id", userID),
				slog.String("invite_id", invite.ID),
				slog.Any("error", derr),
			)
		}
		return "", err
	}

	log.Info("influencer onboarded",
		slog.String("user_id", userID),
		slog.String("influencer_id", entry.ID),
		slog.String("invite_id", invite.ID),
	)
	return userID, nil
}

// Sweep deletes every expired invite and returns how many were removed.
func (s *InviteService) Sweep(ctx context.Context) (int64, error) {
	return s.Store.Invites().DeleteExpiredInvites(ctx, s.Clock.Now())
}

func (s *InviteService) onboardingURL(token string) string {
	base := strings.TrimRight(s.AppBaseURL, "/")
	return base + "/onboarding?" + url.Values{"token": {token}}.Encode()
}

// influencerProfile snapshots the roster entry onto a new profile. The
// roster entry stays authoritative for these fields.
func influencerProfile(userID, fullName string, entry domain.RosterEntry, now time.Time) domain.Profile {
	platform := entry.Platform
	handle := entry.Handle
	link := entry.URL
	followers := entry.FollowerCount

	return domain.Profile{
		ID:             idx.NewAt(now).String(),
		UserID:         userID,
		Role:           domain.RoleInfluencer,
		Status:         domain.StatusApproved,
		FullName:       fullName,
		Platform:       &platform,
		Handle:         &handle,
		URL:            &link,
		FollowerCount:  &followers,
		EngagementRate: entry.EngagementRate,
		AvatarURL:      entry.AvatarURL,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
