package http

import (
	"net/http"

	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/service"
	"github.com/aussiebroadwan/creatorhub/pkg/apisdk"
	"github.com/aussiebroadwan/creatorhub/pkg/httpx"
)

// OnboardingHandler serves the public half of the invite lifecycle.
type OnboardingHandler struct {
	InviteService *service.InviteService
}

// HandleVerify handles GET /v1/onboarding/verify
//
//	@Summary		Verify Invite
//	@Description	Reports whether an invite token can still be redeemed. Unknown and expired tokens look the same.
//	@Tags			Onboarding
//	@Produce		json
//	@Param			token	query		string	true	"Invite token from the onboarding link"
//	@Success		200		{object}	apisdk.VerifyResponse	"valid, email"
//	@Failure		400		{object}	apisdk.ErrorResponse	"token missing or malformed"
//	@Router			/v1/onboarding/verify [get].
func (h *OnboardingHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	check, err := h.InviteService.Verify(r.Context(), r.URL.Query().Get("token"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, apisdk.VerifyResponse{
		Valid: check.Valid,
		Email: check.Email,
	})
}

// HandleComplete handles POST /v1/onboarding/complete
//
//	@Summary		Complete Onboarding
//	@Description	Redeems an invite: creates the creator's account, an approved influencer profile and links the roster entry.
//	@Tags			Onboarding
//	@Accept			json
//	@Produce		json
//	@Param			request	body		apisdk.CompleteRequest	true	"Onboarding details"
//	@Success		200		{object}	apisdk.CompleteResponse	"ok, userId"
//	@Failure		400		{object}	apisdk.ErrorResponse	"error, error_description, details"
//	@Failure		409		{object}	apisdk.ErrorResponse	"email_mismatch, already_linked or email taken"
//	@Failure		410		{object}	apisdk.ErrorResponse	"invite_invalid"
//	@Failure		429		{object}	apisdk.ErrorResponse	"rate limited"
//	@Router			/v1/onboarding/complete [post].
func (h *OnboardingHandler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	var req apisdk.CompleteRequest
	if !decode(w, r, &req) {
		return
	}

	userID, err := h.InviteService.Complete(r.Context(), service.CompleteInviteInput{
		Token:    req.Token,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, apisdk.CompleteResponse{OK: true, UserID: userID})
}
