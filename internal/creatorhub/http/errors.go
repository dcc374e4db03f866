package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/service"
	"github.com/aussiebroadwan/creatorhub/pkg/apisdk"
	"github.com/aussiebroadwan/creatorhub/pkg/httpx"
	"github.com/aussiebroadwan/creatorhub/pkg/slogx"
)

func statusFor(kind service.Kind) int {
	switch kind {
	case service.KindUnauthorized:
		return http.StatusUnauthorized
	case service.KindForbidden:
		return http.StatusForbidden
	case service.KindNotFound:
		return http.StatusNotFound
	case service.KindValidation:
		return http.StatusBadRequest
	case service.KindInviteInvalid:
		return http.StatusGone
	case service.KindEmailMismatch, service.KindAlreadyLinked, service.KindConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// writeError renders a service error. Anything untyped is logged and
// reported as a 500 without details.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var se *service.Error
	if errors.As(err, &se) {
		httpx.WriteJSON(w, statusFor(se.Kind), apisdk.ErrorResponse{
			Error:            string(se.Kind),
			ErrorDescription: se.Message,
			Details:          se.Details,
		})
		return
	}

	slogx.FromContext(r.Context()).Error("request failed",
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)
	httpx.WriteJSON(w, http.StatusInternalServerError, apisdk.ErrorResponse{
		Error:            apisdk.ErrorCodeServerError,
		ErrorDescription: "internal error",
	})
}

func writeBadRequest(w http.ResponseWriter, desc string) {
	httpx.WriteJSON(w, http.StatusBadRequest, apisdk.ErrorResponse{
		Error:            apisdk.ErrorCodeBadRequest,
		ErrorDescription: desc,
	})
}

// decode reads a JSON body into dst, writing a 400 on failure.
func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := httpx.DecodeJSON(w, r, dst); err != nil {
		slogx.FromContext(r.Context()).Debug("rejected request body", slog.Any("error", err))
		writeBadRequest(w, err.Error())
		return false
	}
	return true
}
