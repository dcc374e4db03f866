package http

import (
	"net/http"

	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/service"
	"github.com/aussiebroadwan/creatorhub/pkg/apisdk"
	"github.com/aussiebroadwan/creatorhub/pkg/httpx"
)

// AssignmentsHandler serves the campaign/influencer relation.
type AssignmentsHandler struct {
	AssignmentService *service.AssignmentService
}

// HandleAdd handles POST /v1/campaigns/{id}/influencers
//
//	@Summary		Assign Influencer
//	@Description	Assigns a roster entry to one of the caller's campaigns. Assigning twice is a no-op.
//	@Tags			Assignments
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string					true	"Campaign id"
//	@Param			request	body		apisdk.AssignRequest	true	"Roster entry to assign"
//	@Success		200		{object}	apisdk.AssignmentResponse
//	@Failure		400		{object}	apisdk.ErrorResponse	"error, error_description, details"
//	@Failure		403		{object}	apisdk.ErrorResponse	"not your campaign"
//	@Failure		404		{object}	apisdk.ErrorResponse	"roster entry not found"
//	@Router			/v1/campaigns/{id}/influencers [post].
func (h *AssignmentsHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	var req apisdk.AssignRequest
	if !decode(w, r, &req) {
		return
	}

	a, err := h.AssignmentService.Add(r.Context(), actorFrom(r), r.PathValue("id"), req.InfluencerID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, apisdk.AssignmentResponse{
		CampaignID:   a.CampaignID,
		InfluencerID: a.InfluencerID,
	})
}

// HandleRemove handles DELETE /v1/campaigns/{id}/influencers/{influencerId}
//
//	@Summary		Unassign Influencer
//	@Tags			Assignments
//	@Security		BearerAuth
//	@Param			id				path	string	true	"Campaign id"
//	@Param			influencerId	path	string	true	"Roster entry id"
//	@Success		204
//	@Failure		403	{object}	apisdk.ErrorResponse	"not your campaign"
//	@Router			/v1/campaigns/{id}/influencers/{influencerId} [delete].
func (h *AssignmentsHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	err := h.AssignmentService.Remove(r.Context(), actorFrom(r), r.PathValue("id"), r.PathValue("influencerId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleList handles GET /v1/campaigns/{id}/influencers
//
//	@Summary		List Assigned Influencers
//	@Description	Lists the roster entries assigned to a campaign. Callers who do not own the campaign get an empty list.
//	@Tags			Assignments
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Campaign id"
//	@Success		200	{array}		apisdk.AssignedInfluencerResponse
//	@Failure		403	{object}	apisdk.ErrorResponse	"requires role manager"
//	@Router			/v1/campaigns/{id}/influencers [get].
func (h *AssignmentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	as, err := h.AssignmentService.List(r.Context(), actorFrom(r), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toAssigned(as))
}
