package apisdk

import (
	"context"
	"net/http"
	"net/url"
)

// CreateInvite issues an onboarding invite for one of the caller's roster entries.
func (s *Session) CreateInvite(ctx context.Context, req CreateInviteRequest) (*InviteResponse, error) {
	var out InviteResponse
	if err := s.do(ctx, http.MethodPost, "/v1/admin/invites", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListPendingInfluencers lists influencer profiles awaiting approval.
func (s *Session) ListPendingInfluencers(ctx context.Context) ([]ProfileResponse, error) {
	var out []ProfileResponse
	if err := s.do(ctx, http.MethodGet, "/v1/admin/influencers/pending", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// ApproveInfluencer approves an influencer profile.
func (s *Session) ApproveInfluencer(ctx context.Context, userID string) error {
	path := "/v1/admin/influencers/" + url.PathEscape(userID) + "/approve"
	return s.do(ctx, http.MethodPost, path, nil, nil, http.StatusOK)
}

// LinkRoster points a roster entry at an account, replacing any existing link.
func (s *Session) LinkRoster(ctx context.Context, influencerID string, req LinkRosterRequest) error {
	path := "/v1/admin/roster/" + url.PathEscape(influencerID) + "/link"
	return s.do(ctx, http.MethodPost, path, req, nil, http.StatusOK)
}
