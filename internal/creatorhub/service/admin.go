package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/domain"
	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/store"
	"github.com/aussiebroadwan/creatorhub/pkg/slogx"
)

type LinkRosterInput struct {
	InfluencerID string  `json:"influencerId" validate:"required"`
	UserID       string  `json:"userId" validate:"required"`
	ContactEmail *string `json:"contactEmail,omitempty" validate:"omitempty,email"`
}

type AdminService struct {
	Store store.Store
	Clock Clock
}

// ListPendingInfluencers returns influencer profiles awaiting approval.
func (s *AdminService) ListPendingInfluencers(ctx context.Context) ([]domain.Profile, error) {
	return s.Store.Profiles().ListProfiles(ctx, domain.RoleInfluencer, domain.StatusPending)
}

// ApproveInfluencer marks an influencer profile approved.
func (s *AdminService) ApproveInfluencer(ctx context.Context, userID string) error {
	log := slogx.FromContext(ctx)

	profile, err := s.Store.Profiles().GetProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return notFound("profile")
		}
		return err
	}
	if profile.Role != domain.RoleInfluencer {
		log.Warn("approve attempted on non-influencer",
			slog.String("target_user_id", userID),
			slog.String("role", string(profile.Role)),
		)
		return invalid("userId", "is not an influencer")
	}

	if err := s.Store.Profiles().UpdateProfileStatus(ctx, userID, domain.StatusApproved, s.Clock.Now()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return notFound("profile")
		}
		log.Error("failed to approve influencer", slog.Any("error", err))
		return err
	}

	log.Info("influencer approved", slog.String("target_user_id", userID))
	return nil
}

// LinkRosterToUser points one of the manager's roster entries at an account.
// An existing link is overwritten.
func (s *AdminService) LinkRosterToUser(ctx context.Context, actor Actor, in LinkRosterInput) error {
	log := slogx.FromContext(ctx)

	in.InfluencerID = strings.TrimSpace(in.InfluencerID)
	in.UserID = strings.TrimSpace(in.UserID)
	in.ContactEmail = emptyToNil(in.ContactEmail)
	if err := validateInput(in); err != nil {
		return err
	}

	entry, err := s.Store.Roster().GetRosterEntry(ctx, in.InfluencerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return notFound("roster entry")
		}
		return err
	}
	if entry.OwnerUserID != actor.UserID {
		log.Warn("link attempted on foreign roster entry", slog.String("influencer_id", entry.ID))
		return ErrNotYourRosterEntry
	}

	if err := s.Store.Roster().Relink(ctx, entry.ID, in.UserID, in.ContactEmail, s.Clock.Now()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return notFound("roster entry")
		}
		log.Error("failed to link roster entry", slog.Any("error", err))
		return err
	}

	if entry.IsLinked() && *entry.LinkedUserID != in.UserID {
		log.Warn("roster entry re-linked",
			slog.String("influencer_id", entry.ID),
			slog.String("previous_user_id", *entry.LinkedUserID),
			slog.String("target_user_id", in.UserID),
		)
	} else {
		log.Info("roster entry linked",
			slog.String("influencer_id", entry.ID),
			slog.String("target_user_id", in.UserID),
		)
	}
	return nil
}
