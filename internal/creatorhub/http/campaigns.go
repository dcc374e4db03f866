package http

import (
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/service"
	"github.com/aussiebroadwan/creatorhub/pkg/apisdk"
	"github.com/aussiebroadwan/creatorhub/pkg/httpx"
)

// CampaignsHandler serves campaign CRUD and the influencer's assigned list.
type CampaignsHandler struct {
	CampaignService *service.CampaignService
}

// HandleCreate handles POST /v1/campaigns
//
//	@Summary		Create Campaign
//	@Description	Creates a campaign owned by the caller. Budget accepts a number or numeric string; negative budgets become zero.
//	@Tags			Campaigns
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		apisdk.CampaignRequest	true	"Campaign"
//	@Success		201		{object}	apisdk.CampaignResponse
//	@Failure		400		{object}	apisdk.ErrorResponse	"error, error_description, details"
//	@Failure		401		{object}	apisdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	apisdk.ErrorResponse	"requires role manager"
//	@Router			/v1/campaigns [post].
func (h *CampaignsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req apisdk.CampaignRequest
	if !decode(w, r, &req) {
		return
	}

	c, err := h.CampaignService.Create(r.Context(), actorFrom(r), service.CampaignInput{
		Title:       req.Title,
		Description: req.Description,
		Budget:      req.Budget,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toCampaign(c))
}

// HandleList handles GET /v1/campaigns
//
//	@Summary		List My Campaigns
//	@Description	Lists the caller's campaigns, newest first.
//	@Tags			Campaigns
//	@Produce		json
//	@Security		BearerAuth
//	@Param			q		query		string	false	"Case-insensitive title filter"
//	@Param			limit	query		int		false	"Page size (1-100, default 20)"
//	@Param			offset	query		int		false	"Rows to skip"
//	@Success		200		{array}		apisdk.CampaignResponse
//	@Failure		400		{object}	apisdk.ErrorResponse	"error, error_description, details"
//	@Failure		403		{object}	apisdk.ErrorResponse	"requires role manager"
//	@Router			/v1/campaigns [get].
func (h *CampaignsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	in := service.ListCampaignsInput{Query: q.Get("q")}

	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, badQuery("limit"))
			return
		}
		in.Limit = &limit
	}
	if raw := q.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, badQuery("offset"))
			return
		}
		in.Offset = offset
	}

	cs, err := h.CampaignService.ListMine(r.Context(), actorFrom(r), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toCampaigns(cs))
}

// HandleListAssigned handles GET /v1/campaigns/assigned
//
//	@Summary		List Assigned Campaigns
//	@Description	Lists the campaigns the calling approved influencer is assigned to.
//	@Tags			Campaigns
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		apisdk.CampaignResponse
//	@Failure		401	{object}	apisdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	apisdk.ErrorResponse	"requires an approved influencer"
//	@Router			/v1/campaigns/assigned [get].
func (h *CampaignsHandler) HandleListAssigned(w http.ResponseWriter, r *http.Request) {
	cs, err := h.CampaignService.ListAssignedToMe(r.Context(), actorFrom(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toCampaigns(cs))
}

// HandleGet handles GET /v1/campaigns/{id}
//
//	@Summary		Get Campaign
//	@Description	Managers read their own campaigns; approved influencers read the ones they are assigned to.
//	@Tags			Campaigns
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Campaign id"
//	@Success		200	{object}	apisdk.CampaignResponse
//	@Failure		401	{object}	apisdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	apisdk.ErrorResponse	"no access"
//	@Failure		404	{object}	apisdk.ErrorResponse	"campaign not found"
//	@Router			/v1/campaigns/{id} [get].
func (h *CampaignsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	c, err := h.CampaignService.Get(r.Context(), actorFrom(r), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toCampaign(c))
}

// HandleUpdate handles PUT /v1/campaigns/{id}
//
//	@Summary		Update Campaign
//	@Description	Applies the fields present in the body.
//	@Tags			Campaigns
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string						true	"Campaign id"
//	@Param			request	body		apisdk.CampaignPatchRequest	true	"Fields to change"
//	@Success		200		{object}	apisdk.CampaignResponse
//	@Failure		400		{object}	apisdk.ErrorResponse	"error, error_description, details"
//	@Failure		404		{object}	apisdk.ErrorResponse	"campaign not found"
//	@Router			/v1/campaigns/{id} [put].
func (h *CampaignsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req apisdk.CampaignPatchRequest
	if !decode(w, r, &req) {
		return
	}

	c, err := h.CampaignService.Update(r.Context(), actorFrom(r), r.PathValue("id"), service.CampaignPatch{
		Title:       req.Title,
		Description: req.Description,
		Budget:      req.Budget,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toCampaign(c))
}

// HandleDelete handles DELETE /v1/campaigns/{id}
//
//	@Summary		Delete Campaign
//	@Description	Deletes the campaign and its assignments.
//	@Tags			Campaigns
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Campaign id"
//	@Success		204
//	@Failure		404	{object}	apisdk.ErrorResponse	"campaign not found"
//	@Router			/v1/campaigns/{id} [delete].
func (h *CampaignsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.CampaignService.Delete(r.Context(), actorFrom(r), r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func badQuery(param string) error {
	return &service.Error{
		Kind:    service.KindValidation,
		Message: "invalid query parameter",
		Details: map[string]string{param: "must be an integer"},
	}
}
