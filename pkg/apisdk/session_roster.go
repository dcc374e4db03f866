package apisdk

import (
	"context"
	"net/http"
	"net/url"
)

func (s *Session) CreateRosterEntry(ctx context.Context, req RosterRequest) (*RosterResponse, error) {
	var out RosterResponse
	if err := s.do(ctx, http.MethodPost, "/v1/roster", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListRoster lists every manager's roster entries.
func (s *Session) ListRoster(ctx context.Context) ([]RosterResponse, error) {
	var out []RosterResponse
	if err := s.do(ctx, http.MethodGet, "/v1/roster", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// ListMyRoster lists the caller's own roster entries.
func (s *Session) ListMyRoster(ctx context.Context) ([]RosterResponse, error) {
	var out []RosterResponse
	if err := s.do(ctx, http.MethodGet, "/v1/roster/mine", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) GetRosterEntry(ctx context.Context, id string) (*RosterResponse, error) {
	var out RosterResponse
	if err := s.do(ctx, http.MethodGet, "/v1/roster/"+url.PathEscape(id), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateRosterEntry(ctx context.Context, id string, req RosterPatchRequest) (*RosterResponse, error) {
	var out RosterResponse
	if err := s.do(ctx, http.MethodPut, "/v1/roster/"+url.PathEscape(id), req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) DeleteRosterEntry(ctx context.Context, id string) error {
	return s.do(ctx, http.MethodDelete, "/v1/roster/"+url.PathEscape(id), nil, nil, http.StatusNoContent)
}
