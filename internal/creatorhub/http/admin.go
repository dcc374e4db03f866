package http

import (
	"net/http"

	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/service"
	"github.com/aussiebroadwan/creatorhub/pkg/apisdk"
	"github.com/aussiebroadwan/creatorhub/pkg/httpx"
)

// AdminHandler serves the manager-only administration endpoints.
type AdminHandler struct {
	AdminService  *service.AdminService
	InviteService *service.InviteService
}

// HandleCreateInvite handles POST /v1/admin/invites
//
//	@Summary		Create Onboarding Invite
//	@Description	Issues a single-use onboarding link for one of the caller's roster entries and records the email as the entry's contact.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		apisdk.CreateInviteRequest	true	"Invite request"
//	@Success		201		{object}	apisdk.InviteResponse		"ok, url, expiresAt"
//	@Failure		400		{object}	apisdk.ErrorResponse		"error, error_description, details"
//	@Failure		401		{object}	apisdk.ErrorResponse		"not your roster entry"
//	@Failure		403		{object}	apisdk.ErrorResponse		"requires role manager"
//	@Failure		404		{object}	apisdk.ErrorResponse		"roster entry not found"
//	@Router			/v1/admin/invites [post].
func (h *AdminHandler) HandleCreateInvite(w http.ResponseWriter, r *http.Request) {
	var req apisdk.CreateInviteRequest
	if !decode(w, r, &req) {
		return
	}

	issued, err := h.InviteService.Issue(r.Context(), actorFrom(r), service.CreateInviteInput{
		InfluencerID:   req.InfluencerID,
		Email:          req.Email,
		ExpiresInHours: req.ExpiresInHours,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, apisdk.InviteResponse{
		OK:        true,
		URL:       issued.URL,
		ExpiresAt: issued.ExpiresAt,
	})
}

// HandleListPending handles GET /v1/admin/influencers/pending
//
//	@Summary		List Pending Influencers
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		apisdk.ProfileResponse
//	@Failure		401	{object}	apisdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	apisdk.ErrorResponse	"requires role manager"
//	@Router			/v1/admin/influencers/pending [get].
func (h *AdminHandler) HandleListPending(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.AdminService.ListPendingInfluencers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProfiles(profiles))
}

// HandleApprove handles POST /v1/admin/influencers/{userId}/approve
//
//	@Summary		Approve Influencer
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			userId	path		string					true	"Influencer user id"
//	@Success		200		{object}	apisdk.OKResponse
//	@Failure		400		{object}	apisdk.ErrorResponse	"profile is not an influencer"
//	@Failure		403		{object}	apisdk.ErrorResponse	"requires role manager"
//	@Failure		404		{object}	apisdk.ErrorResponse	"profile not found"
//	@Router			/v1/admin/influencers/{userId}/approve [post].
func (h *AdminHandler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	if err := h.AdminService.ApproveInfluencer(r.Context(), r.PathValue("userId")); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, apisdk.OKResponse{OK: true})
}

// HandleLinkRoster handles POST /v1/admin/roster/{id}/link
//
//	@Summary		Link Roster Entry
//	@Description	Points one of the caller's roster entries at an existing account, replacing any previous link.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string					true	"Roster entry id"
//	@Param			request	body		apisdk.LinkRosterRequest	true	"Link request"
//	@Success		200		{object}	apisdk.OKResponse
//	@Failure		400		{object}	apisdk.ErrorResponse	"error, error_description, details"
//	@Failure		401		{object}	apisdk.ErrorResponse	"not your roster entry"
//	@Failure		404		{object}	apisdk.ErrorResponse	"roster entry not found"
//	@Router			/v1/admin/roster/{id}/link [post].
func (h *AdminHandler) HandleLinkRoster(w http.ResponseWriter, r *http.Request) {
	var req apisdk.LinkRosterRequest
	if !decode(w, r, &req) {
		return
	}

	err := h.AdminService.LinkRosterToUser(r.Context(), actorFrom(r), service.LinkRosterInput{
		InfluencerID: r.PathValue("id"),
		UserID:       req.UserID,
		ContactEmail: req.ContactEmail,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, apisdk.OKResponse{OK: true})
}
