package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/domain"
	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/store"
	"github.com/aussiebroadwan/creatorhub/pkg/slogx"
)

// AssignmentService manages which roster entries work on which campaign.
// Only the campaign owner may change or list assignments; the roster entry
// may belong to any manager.
type AssignmentService struct {
	Store store.Store
	Clock Clock
}

// Add assigns a roster entry to a campaign. Assigning twice is a no-op.
func (s *AssignmentService) Add(ctx context.Context, actor Actor, campaignID, influencerID string) (domain.Assignment, error) {
	log := slogx.FromContext(ctx)

	if err := s.requireOwner(ctx, actor, campaignID); err != nil {
		return domain.Assignment{}, err
	}

	a := domain.Assignment{
		CampaignID:   campaignID,
		InfluencerID: influencerID,
		CreatedAt:    s.Clock.Now(),
	}
	inserted, err := s.Store.Assignments().AddAssignment(ctx, a)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Assignment{}, notFound("roster entry")
		}
		log.Error("failed to add assignment", slog.Any("error", err))
		return domain.Assignment{}, err
	}

	if inserted {
		log.Info("influencer assigned",
			slog.String("campaign_id", campaignID),
			slog.String("influencer_id", influencerID),
		)
	}
	return a, nil
}

// Remove unassigns a roster entry. Removing a missing assignment succeeds.
func (s *AssignmentService) Remove(ctx context.Context, actor Actor, campaignID, influencerID string) error {
	if err := s.requireOwner(ctx, actor, campaignID); err != nil {
		return err
	}

	removed, err := s.Store.Assignments().RemoveAssignment(ctx, campaignID, influencerID)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to remove assignment", slog.Any("error", err))
		return err
	}
	if removed {
		slogx.FromContext(ctx).Info("influencer unassigned",
			slog.String("campaign_id", campaignID),
			slog.String("influencer_id", influencerID),
		)
	}
	return nil
}

// List returns the campaign's assigned roster entries, or an empty list
// when the actor does not own the campaign.
func (s *AssignmentService) List(ctx context.Context, actor Actor, campaignID string) ([]domain.AssignedInfluencer, error) {
	err := s.requireOwner(ctx, actor, campaignID)
	if errors.Is(err, ErrNotYourCampaign) {
		return []domain.AssignedInfluencer{}, nil
	}
	if err != nil {
		return nil, err
	}
	return s.Store.Assignments().ListAssignments(ctx, campaignID)
}

func (s *AssignmentService) requireOwner(ctx context.Context, actor Actor, campaignID string) error {
	c, err := s.Store.Campaigns().GetCampaignByID(ctx, campaignID)
	if errors.Is(err, store.ErrNotFound) || (err == nil && c.OwnerUserID != actor.UserID) {
		slogx.FromContext(ctx).Warn("assignment change on campaign not owned by caller",
			slog.String("campaign_id", campaignID),
		)
		return ErrNotYourCampaign
	}
	return err
}
