package http

import (
	"net/http"

	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/domain"
	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/service"
	"github.com/aussiebroadwan/creatorhub/pkg/apisdk"
	"github.com/aussiebroadwan/creatorhub/pkg/httpx"
)

// RosterHandler serves the managers' creator roster.
type RosterHandler struct {
	RosterService *service.RosterService
}

// HandleCreate handles POST /v1/roster
//
//	@Summary		Add Roster Entry
//	@Tags			Roster
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		apisdk.RosterRequest	true	"Roster entry"
//	@Success		201		{object}	apisdk.RosterResponse
//	@Failure		400		{object}	apisdk.ErrorResponse	"error, error_description, details"
//	@Failure		403		{object}	apisdk.ErrorResponse	"requires role manager"
//	@Router			/v1/roster [post].
func (h *RosterHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req apisdk.RosterRequest
	if !decode(w, r, &req) {
		return
	}

	e, err := h.RosterService.Create(r.Context(), actorFrom(r), service.RosterInput{
		Platform:       domain.Platform(req.Platform),
		Handle:         req.Handle,
		URL:            req.URL,
		ExternalID:     req.ExternalID,
		FollowerCount:  req.FollowerCount,
		EngagementRate: req.EngagementRate,
		AvatarURL:      req.AvatarURL,
		ContactEmail:   req.ContactEmail,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toRoster(e))
}

// HandleListAll handles GET /v1/roster
//
//	@Summary		List Roster
//	@Description	Lists every manager's roster entries.
//	@Tags			Roster
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		apisdk.RosterResponse
//	@Failure		403	{object}	apisdk.ErrorResponse	"requires role manager"
//	@Router			/v1/roster [get].
func (h *RosterHandler) HandleListAll(w http.ResponseWriter, r *http.Request) {
	es, err := h.RosterService.ListAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toRosterList(es))
}

// HandleListMine handles GET /v1/roster/mine
//
//	@Summary		List My Roster
//	@Tags			Roster
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		apisdk.RosterResponse
//	@Failure		403	{object}	apisdk.ErrorResponse	"requires role manager"
//	@Router			/v1/roster/mine [get].
func (h *RosterHandler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	es, err := h.RosterService.ListMine(r.Context(), actorFrom(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toRosterList(es))
}

// HandleGet handles GET /v1/roster/{id}
//
//	@Summary		Get Roster Entry
//	@Tags			Roster
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Roster entry id"
//	@Success		200	{object}	apisdk.RosterResponse
//	@Failure		404	{object}	apisdk.ErrorResponse	"roster entry not found"
//	@Router			/v1/roster/{id} [get].
func (h *RosterHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	e, err := h.RosterService.Get(r.Context(), actorFrom(r), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toRoster(e))
}

// HandleUpdate handles PUT /v1/roster/{id}
//
//	@Summary		Update Roster Entry
//	@Description	Applies the fields present in the body. Empty strings and a null engagementRate clear optional fields.
//	@Tags			Roster
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string						true	"Roster entry id"
//	@Param			request	body		apisdk.RosterPatchRequest	true	"Fields to change"
//	@Success		200		{object}	apisdk.RosterResponse
//	@Failure		400		{object}	apisdk.ErrorResponse	"error, error_description, details"
//	@Failure		404		{object}	apisdk.ErrorResponse	"roster entry not found"
//	@Router			/v1/roster/{id} [put].
func (h *RosterHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req apisdk.RosterPatchRequest
	if !decode(w, r, &req) {
		return
	}

	e, err := h.RosterService.Update(r.Context(), actorFrom(r), r.PathValue("id"), service.RosterPatch{
		Platform:       platformPtr(req.Platform),
		Handle:         req.Handle,
		URL:            req.URL,
		ExternalID:     req.ExternalID,
		FollowerCount:  req.FollowerCount,
		EngagementRate: req.EngagementRate.Value,
		AvatarURL:      req.AvatarURL,
		ContactEmail:   req.ContactEmail,

		ClearEngagementRate: req.EngagementRate.IsNull(),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toRoster(e))
}

// HandleDelete handles DELETE /v1/roster/{id}
//
//	@Summary		Delete Roster Entry
//	@Description	Deletes the entry with its assignments and outstanding invites.
//	@Tags			Roster
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Roster entry id"
//	@Success		204
//	@Failure		404	{object}	apisdk.ErrorResponse	"roster entry not found"
//	@Router			/v1/roster/{id} [delete].
func (h *RosterHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.RosterService.Delete(r.Context(), actorFrom(r), r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
