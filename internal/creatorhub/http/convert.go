package http

import (
	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/domain"
	"github.com/aussiebroadwan/creatorhub/pkg/apisdk"
)

func toCampaign(c domain.Campaign) apisdk.CampaignResponse {
	return apisdk.CampaignResponse{
		ID:          c.ID,
		OwnerUserID: c.OwnerUserID,
		Title:       c.Title,
		Description: c.Description,
		Budget:      c.Budget.StringFixed(2),
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toCampaigns(cs []domain.Campaign) []apisdk.CampaignResponse {
	out := make([]apisdk.CampaignResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, toCampaign(c))
	}
	return out
}

func toRoster(e domain.RosterEntry) apisdk.RosterResponse {
	return apisdk.RosterResponse{
		ID:              e.ID,
		OwnerUserID:     e.OwnerUserID,
		LinkedUserID:    e.LinkedUserID,
		ContactEmail:    e.ContactEmail,
		Platform:        string(e.Platform),
		Handle:          e.Handle,
		URL:             e.URL,
		ExternalID:      e.ExternalID,
		FollowerCount:   e.FollowerCount,
		EngagementRate:  e.EngagementRate,
		AvatarURL:       e.AvatarURL,
		LastRefreshedAt: e.LastRefreshedAt,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func toRosterList(es []domain.RosterEntry) []apisdk.RosterResponse {
	out := make([]apisdk.RosterResponse, 0, len(es))
	for _, e := range es {
		out = append(out, toRoster(e))
	}
	return out
}

func toAssigned(as []domain.AssignedInfluencer) []apisdk.AssignedInfluencerResponse {
	out := make([]apisdk.AssignedInfluencerResponse, 0, len(as))
	for _, a := range as {
		out = append(out, apisdk.AssignedInfluencerResponse{
			CampaignID: a.CampaignID,
			AssignedAt: a.AssignedAt,
			Influencer: toRoster(a.Influencer),
		})
	}
	return out
}

func toProfiles(ps []domain.Profile) []apisdk.ProfileResponse {
	out := make([]apisdk.ProfileResponse, 0, len(ps))
	for _, p := range ps {
		var platform *string
		if p.Platform != nil {
			s := string(*p.Platform)
			platform = &s
		}
		out = append(out, apisdk.ProfileResponse{
			ID:             p.ID,
			UserID:         p.UserID,
			Role:           string(p.Role),
			Status:         string(p.Status),
			FullName:       p.FullName,
			Platform:       platform,
			Handle:         p.Handle,
			URL:            p.URL,
			FollowerCount:  p.FollowerCount,
			EngagementRate: p.EngagementRate,
			AvatarURL:      p.AvatarURL,
			CreatedAt:      p.CreatedAt,
		})
	}
	return out
}

func platformPtr(s *string) *domain.Platform {
	if s == nil {
		return nil
	}
	p := domain.Platform(*s)
	return &p
}
