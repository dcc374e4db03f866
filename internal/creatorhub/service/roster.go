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
)

type RosterInput struct {
	Platform       domain.Platform `json:"platform" validate:"required,platform"`
	Handle         string          `json:"handle" validate:"required"`
	URL            string          `json:"url" validate:"required,url"`
	ExternalID     *string         `json:"externalId,omitempty"`
	FollowerCount  int64           `json:"followerCount" validate:"gte=0"`
	EngagementRate *float64        `json:"engagementRate,omitempty" validate:"omitempty,gte=0,lte=1"`
	AvatarURL      *string         `json:"avatarUrl,omitempty" validate:"omitempty,url"`
	ContactEmail   *string         `json:"contactEmail,omitempty" validate:"omitempty,email"`
}

// RosterPatch updates only the fields that are set. An empty string clears
// the optional string fields; ClearEngagementRate clears the rate.
type RosterPatch struct {
	Platform       *domain.Platform `json:"platform,omitempty" validate:"omitnil,platform"`
	Handle         *string          `json:"handle,omitempty" validate:"omitnil,min=1"`
	URL            *string          `json:"url,omitempty" validate:"omitnil,url"`
	ExternalID     *string          `json:"externalId,omitempty"`
	FollowerCount  *int64           `json:"followerCount,omitempty" validate:"omitnil,gte=0"`
	EngagementRate *float64         `json:"engagementRate,omitempty" validate:"omitnil,gte=0,lte=1"`
	AvatarURL      *string          `json:"avatarUrl,omitempty" validate:"omitnil,url"`
	ContactEmail   *string          `json:"contactEmail,omitempty" validate:"omitnil,email"`

	ClearEngagementRate bool `json:"-"`
}

func (p RosterPatch) apply(e *domain.RosterEntry) {
	if p.Platform != nil {
		e.Platform = *p.Platform
	}
	if p.Handle != nil {
		e.Handle = *p.Handle
	}
	if p.URL != nil {
		e.URL = *p.URL
	}
	if p.ExternalID != nil {
		e.ExternalID = emptyToNil(p.ExternalID)
	}
	if p.FollowerCount != nil {
		e.FollowerCount = *p.FollowerCount
	}
	switch {
	case p.ClearEngagementRate:
		e.EngagementRate = nil
	case p.EngagementRate != nil:
		e.EngagementRate = p.EngagementRate
	}
	if p.AvatarURL != nil {
		e.AvatarURL = emptyToNil(p.AvatarURL)
	}
	if p.ContactEmail != nil {
		e.ContactEmail = emptyToNil(p.ContactEmail)
	}
}

type RosterService struct {
	Store store.Store
	Clock Clock
}

// Create adds an entry to the actor's roster.
func (s *RosterService) Create(ctx context.Context, actor Actor, in RosterInput) (domain.RosterEntry, error) {
	log := slogx.FromContext(ctx)

	in.Handle = strings.TrimSpace(in.Handle)
	in.URL = strings.TrimSpace(in.URL)
	in.ExternalID = emptyToNil(in.ExternalID)
	in.AvatarURL = emptyToNil(in.AvatarURL)
	in.ContactEmail = emptyToNil(in.ContactEmail)
	if err := validateInput(in); err != nil {
		return domain.RosterEntry{}, err
	}

	now := s.Clock.Now()
	entry := domain.RosterEntry{
		ID:             idx.NewAt(now).String(),
		OwnerUserID:    actor.UserID,
		ContactEmail:   in.ContactEmail,
		Platform:       in.Platform,
		Handle:         in.Handle,
		URL:            in.URL,
		ExternalID:     in.ExternalID,
		FollowerCount:  in.FollowerCount,
		EngagementRate: in.EngagementRate,
		AvatarURL:      in.AvatarURL,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.Store.Roster().CreateRosterEntry(ctx, entry); err != nil {
		log.Error("failed to create roster entry", slog.Any("error", err))
		return domain.RosterEntry{}, err
	}

	log.Info("roster entry created", slog.String("influencer_id", entry.ID))
	return entry, nil
}

// ListMine returns the actor's own roster entries, newest first.
func (s *RosterService) ListMine(ctx context.Context, actor Actor) ([]domain.RosterEntry, error) {
	return s.Store.Roster().ListRosterByOwner(ctx, actor.UserID)
}

// ListAll returns every roster entry. Managers share roster visibility so
// any entry can be assigned to a campaign.
func (s *RosterService) ListAll(ctx context.Context) ([]domain.RosterEntry, error) {
	return s.Store.Roster().ListRoster(ctx)
}

// Get returns one of the actor's roster entries.
func (s *RosterService) Get(ctx context.Context, actor Actor, id string) (domain.RosterEntry, error) {
	entry, err := s.Store.Roster().GetRosterEntry(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.RosterEntry{}, notFound("roster entry")
		}
		return domain.RosterEntry{}, err
	}
	if entry.OwnerUserID != actor.UserID {
		return domain.RosterEntry{}, notFound("roster entry")
	}
	return entry, nil
}

// Update applies patch to one of the actor's roster entries. Entries owned
// by someone else are reported as not found.
func (s *RosterService) Update(ctx context.Context, actor Actor, id string, patch RosterPatch) (domain.RosterEntry, error) {
	log := slogx.FromContext(ctx)

	patch.Handle = trimPtr(patch.Handle)
	patch.URL = trimPtr(patch.URL)
	patch.ContactEmail = trimPtr(patch.ContactEmail)

	// Blank optional fields are clears, not values to validate.
	check := patch
	check.ExternalID = emptyToNil(check.ExternalID)
	check.AvatarURL = emptyToNil(check.AvatarURL)
	check.ContactEmail = emptyToNil(check.ContactEmail)
	if err := validateInput(check); err != nil {
		return domain.RosterEntry{}, err
	}

	entry, err := s.Get(ctx, actor, id)
	if err != nil {
		return domain.RosterEntry{}, err
	}

	patch.apply(&entry)
	entry.UpdatedAt = s.Clock.Now()

	if err := s.Store.Roster().UpdateRosterEntry(ctx, entry); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.RosterEntry{}, notFound("roster entry")
		}
		log.Error("failed to update roster entry", slog.Any("error", err))
		return domain.RosterEntry{}, err
	}
	return entry, nil
}

// Delete removes one of the actor's roster entries together with its
// assignments and outstanding invites.
func (s *RosterService) Delete(ctx context.Context, actor Actor, id string) error {
	if err := s.Store.Roster().DeleteRosterEntry(ctx, id, actor.UserID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return notFound("roster entry")
		}
		slogx.FromContext(ctx).Error("failed to delete roster entry", slog.Any("error", err))
		return err
	}
	slogx.FromContext(ctx).Info("roster entry deleted", slog.String("influencer_id", id))
	return nil
}
