package apisdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ListCampaignsOptions filters and pages the caller's campaigns.
type ListCampaignsOptions struct {
	Query  string
	Limit  int // 0 uses the server default
	Offset int
}

func (s *Session) CreateCampaign(ctx context.Context, req CampaignRequest) (*CampaignResponse, error) {
	var out CampaignResponse
	if err := s.do(ctx, http.MethodPost, "/v1/campaigns", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) ListCampaigns(ctx context.Context, opts ListCampaignsOptions) ([]CampaignResponse, error) {
	q := url.Values{}
	if opts.Query != "" {
		q.Set("q", opts.Query)
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Offset > 0 {
		q.Set("offset", strconv.Itoa(opts.Offset))
	}

	path := "/v1/campaigns"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out []CampaignResponse
	if err := s.do(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAssignedCampaigns lists campaigns the calling influencer is assigned to.
func (s *Session) ListAssignedCampaigns(ctx context.Context) ([]CampaignResponse, error) {
	var out []CampaignResponse
	if err := s.do(ctx, http.MethodGet, "/v1/campaigns/assigned", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) GetCampaign(ctx context.Context, id string) (*CampaignResponse, error) {
	var out CampaignResponse
	if err := s.do(ctx, http.MethodGet, "/v1/campaigns/"+url.PathEscape(id), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateCampaign(ctx context.Context, id string, req CampaignPatchRequest) (*CampaignResponse, error) {
	var out CampaignResponse
	if err := s.do(ctx, http.MethodPut, "/v1/campaigns/"+url.PathEscape(id), req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) DeleteCampaign(ctx context.Context, id string) error {
	return s.do(ctx, http.MethodDelete, "/v1/campaigns/"+url.PathEscape(id), nil, nil, http.StatusNoContent)
}

// AddInfluencer assigns a roster entry to a campaign. Repeating it is a no-op.
func (s *Session) AddInfluencer(ctx context.Context, campaignID, influencerID string) (*AssignmentResponse, error) {
	var out AssignmentResponse
	path := "/v1/campaigns/" + url.PathEscape(campaignID) + "/influencers"
	if err := s.do(ctx, http.MethodPost, path, AssignRequest{InfluencerID: influencerID}, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) RemoveInfluencer(ctx context.Context, campaignID, influencerID string) error {
	path := "/v1/campaigns/" + url.PathEscape(campaignID) + "/influencers/" + url.PathEscape(influencerID)
	return s.do(ctx, http.MethodDelete, path, nil, nil, http.StatusNoContent)
}

func (s *Session) ListCampaignInfluencers(ctx context.Context, campaignID string) ([]AssignedInfluencerResponse, error) {
	var out []AssignedInfluencerResponse
	path := "/v1/campaigns/" + url.PathEscape(campaignID) + "/influencers"
	if err := s.do(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}
