package httpx

import (
	"net/http"
)

// Role and status values the guards compare against.
const (
	RoleManager    = "manager"
	RoleInfluencer = "influencer"
	StatusApproved = "approved"
)

// RequireRole rejects callers whose profile role is not role. It must run
// after Authn; a request with no principal is treated as unauthenticated.
func RequireRole(role string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := PrincipalFromContext(r.Context())
			if !ok {
				writeBearerError(w, "missing bearer token")
				return
			}
			if !p.HasRole(role) {
				WriteError(w, http.StatusForbidden, "forbidden", "requires role "+role)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireApprovedInfluencer rejects callers that are not influencers with an
// approved profile.
func RequireApprovedInfluencer() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := PrincipalFromContext(r.Context())
			if !ok {
				writeBearerError(w, "missing bearer token")
				return
			}
			if !p.HasRole(RoleInfluencer) || p.Status != StatusApproved {
				WriteError(w, http.StatusForbidden, "forbidden", "requires an approved influencer")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
