package http

import (
	"net/http"

	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/service"
	"github.com/aussiebroadwan/creatorhub/pkg/apisdk"
	"github.com/aussiebroadwan/creatorhub/pkg/httpx"
)

// AuthHandler serves registration, login and the caller's own identity.
type AuthHandler struct {
	AuthService *service.AuthService
}

// HandleRegister handles POST /v1/auth/register
//
//	@Summary		Register Manager
//	@Description	Creates an account with an approved manager profile.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		apisdk.RegisterRequest	true	"Registration request"
//	@Success		201		{object}	apisdk.RegisterResponse	"ok, userId"
//	@Failure		400		{object}	apisdk.ErrorResponse	"error, error_description, details"
//	@Failure		409		{object}	apisdk.ErrorResponse	"email already registered"
//	@Failure		429		{object}	apisdk.ErrorResponse	"rate limited"
//	@Router			/v1/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req apisdk.RegisterRequest
	if !decode(w, r, &req) {
		return
	}

	userID, err := h.AuthService.RegisterManager(r.Context(), service.RegisterManagerInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, apisdk.RegisterResponse{OK: true, UserID: userID})
}

// HandleLogin handles POST /v1/auth/login
//
//	@Summary		Login
//	@Description	Exchanges an email and password for a bearer access token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		apisdk.LoginRequest		true	"Credentials"
//	@Success		200		{object}	apisdk.TokenResponse	"access_token, token_type, expires_in"
//	@Failure		400		{object}	apisdk.ErrorResponse	"error, error_description, details"
//	@Failure		401		{object}	apisdk.ErrorResponse	"invalid credentials"
//	@Failure		429		{object}	apisdk.ErrorResponse	"rate limited"
//	@Router			/v1/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req apisdk.LoginRequest
	if !decode(w, r, &req) {
		return
	}

	tok, err := h.AuthService.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, apisdk.TokenResponse{
		AccessToken: tok.AccessToken,
		TokenType:   tok.TokenType,
		ExpiresIn:   tok.ExpiresIn,
	})
}

// HandleMe handles GET /v1/auth/me
//
//	@Summary		Current User
//	@Description	Returns the caller's user id, role and status. Role and status are empty when the account has no profile.
//	@Tags			Auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	apisdk.MeResponse		"userId, role, status"
//	@Failure		401	{object}	apisdk.ErrorResponse	"error, error_description"
//	@Router			/v1/auth/me [get].
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	me := h.AuthService.Me(r.Context(), actorFrom(r))
	httpx.WriteJSON(w, http.StatusOK, apisdk.MeResponse{
		UserID: me.UserID,
		Role:   string(me.Role),
		Status: string(me.Status),
	})
}
