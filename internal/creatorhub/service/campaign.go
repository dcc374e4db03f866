package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/domain"
	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/store"
	"github.com/aussiebroadwan/creatorhub/pkg/idx"
	"github.com/aussiebroadwan/creatorhub/pkg/slogx"
	"github.com/shopspring/decimal"
)

const (
	DefaultCampaignPageSize = 20
	MaxCampaignPageSize     = 100
)

// CampaignInput creates a campaign. Budget accepts a JSON number or a
// numeric string.
type CampaignInput struct {
	Title       string           `json:"title" validate:"required,max=200"`
	Description *string          `json:"description,omitempty"`
	Budget      *decimal.Decimal `json:"budget,omitempty"`
	StartDate   string           `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate     string           `json:"endDate" validate:"required,datetime=2006-01-02"`
}

// CampaignPatch updates only the fields that are set.
type CampaignPatch struct {
	Title       *string          `json:"title,omitempty" validate:"omitnil,min=1,max=200"`
	Description *string          `json:"description,omitempty"`
	Budget      *decimal.Decimal `json:"budget,omitempty"`
	StartDate   *string          `json:"startDate,omitempty" validate:"omitnil,datetime=2006-01-02"`
	EndDate     *string          `json:"endDate,omitempty" validate:"omitnil,datetime=2006-01-02"`
}

func (p CampaignPatch) apply(c *domain.Campaign) {
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Description != nil {
		c.Description = emptyToNil(p.Description)
	}
	if p.Budget != nil {
		c.Budget = normalizeBudget(p.Budget)
	}
	if p.StartDate != nil {
		c.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		c.EndDate = *p.EndDate
	}
}

// ListCampaignsInput pages through the actor's campaigns. A nil Limit means
// DefaultCampaignPageSize.
type ListCampaignsInput struct {
	Query  string
	Limit  *int
	Offset int
}

type CampaignService struct {
	Store store.Store
	Clock Clock
}

// Create adds a campaign owned by the actor.
func (s *CampaignService) Create(ctx context.Context, actor Actor, in CampaignInput) (domain.Campaign, error) {
	log := slogx.FromContext(ctx)

	in.Title = strings.TrimSpace(in.Title)
	in.StartDate = strings.TrimSpace(in.StartDate)
	in.EndDate = strings.TrimSpace(in.EndDate)
	if err := validateInput(in); err != nil {
		return domain.Campaign{}, err
	}
	if err := checkDateOrder(in.StartDate, in.EndDate); err != nil {
		return domain.Campaign{}, err
	}

	now := s.Clock.Now()
	c := domain.Campaign{
		ID:          idx.NewAt(now).String(),
		OwnerUserID: actor.UserID,
		Title:       in.Title,
		Description: emptyToNil(in.Description),
		Budget:      normalizeBudget(in.Budget),
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Store.Campaigns().CreateCampaign(ctx, c); err != nil {
		log.Error("failed to create campaign", slog.Any("error", err))
		return domain.Campaign{}, err
	}

	log.Info("campaign created", slog.String("campaign_id", c.ID))
	return c, nil
}

// ListMine returns the actor's campaigns, newest first, optionally filtered
// by a case-insensitive title substring.
func (s *CampaignService) ListMine(ctx context.Context, actor Actor, in ListCampaignsInput) ([]domain.Campaign, error) {
	limit := DefaultCampaignPageSize
	if in.Limit != nil {
		limit = *in.Limit
	}
	if limit < 1 || limit > MaxCampaignPageSize {
		return nil, invalid("limit", "must be between 1 and 100")
	}
	if in.Offset < 0 {
		return nil, invalid("offset", "must be at least 0")
	}

	return s.Store.Campaigns().ListCampaigns(ctx, domain.CampaignFilter{
		OwnerUserID: actor.UserID,
		Query:       strings.TrimSpace(in.Query),
		Limit:       limit,
		Offset:      in.Offset,
	})
}

// Get returns a campaign the actor may see: managers see their own,
// approved influencers see the ones they are assigned to.
func (s *CampaignService) Get(ctx context.Context, actor Actor, id string) (domain.Campaign, error) {
	switch {
	case actor.Role == domain.RoleManager:
		c, err := s.Store.Campaigns().GetCampaignByID(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.Campaign{}, notFound("campaign")
			}
			return domain.Campaign{}, err
		}
		if c.OwnerUserID != actor.UserID {
			return domain.Campaign{}, notFound("campaign")
		}
		return c, nil

	case actor.IsApprovedInfluencer():
		c, err := s.Store.Campaigns().GetAssignedCampaign(ctx, id, actor.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.Campaign{}, notFound("campaign")
			}
			return domain.Campaign{}, err
		}
		return c, nil
	}

	return domain.Campaign{}, &Error{Kind: KindForbidden, Message: "requires a manager or an approved influencer"}
}

// Update applies patch to one of the actor's campaigns.
func (s *CampaignService) Update(ctx context.Context, actor Actor, id string, patch CampaignPatch) (domain.Campaign, error) {
	log := slogx.FromContext(ctx)

	patch.Title = trimPtr(patch.Title)
	patch.StartDate = trimPtr(patch.StartDate)
	patch.EndDate = trimPtr(patch.EndDate)
	if err := validateInput(patch); err != nil {
		return domain.Campaign{}, err
	}

	c, err := s.Store.Campaigns().GetCampaignByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Campaign{}, notFound("campaign")
		}
		return domain.Campaign{}, err
	}
	if c.OwnerUserID != actor.UserID {
		log.Warn("update attempted on foreign campaign", slog.String("campaign_id", id))
		return domain.Campaign{}, notFound("campaign")
	}

	patch.apply(&c)
	if err := checkDateOrder(c.StartDate, c.EndDate); err != nil {
		return domain.Campaign{}, err
	}
	c.UpdatedAt = s.Clock.Now()

	if err := s.Store.Campaigns().UpdateCampaign(ctx, c); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Campaign{}, notFound("campaign")
		}
		log.Error("failed to update campaign", slog.Any("error", err))
		return domain.Campaign{}, err
	}
	return c, nil
}

// Delete removes one of the actor's campaigns and its assignments.
func (s *CampaignService) Delete(ctx context.Context, actor Actor, id string) error {
	log := slogx.FromContext(ctx)

	if err := s.Store.Campaigns().DeleteCampaign(ctx, id, actor.UserID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return notFound("campaign")
		}
		log.Error("failed to delete campaign", slog.Any("error", err))
		return err
	}

	log.Info("campaign deleted", slog.String("campaign_id", id))
	return nil
}

// ListAssignedToMe returns the campaigns the actor is assigned to through a
// linked roster entry.
func (s *CampaignService) ListAssignedToMe(ctx context.Context, actor Actor) ([]domain.Campaign, error) {
	return s.Store.Campaigns().ListAssignedCampaigns(ctx, actor.UserID)
}

// normalizeBudget clamps to zero and rounds to cents.
func normalizeBudget(b *decimal.Decimal) decimal.Decimal {
	if b == nil || b.IsNegative() {
		return decimal.Zero
	}
	return b.Round(2)
}

// checkDateOrder relies on YYYY-MM-DD sorting lexically.
func checkDateOrder(start, end string) error {
	if start > end {
		return invalid("endDate", "must not be before startDate")
	}
	return nil
}
