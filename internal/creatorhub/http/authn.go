package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/domain"
	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/service"
	"github.com/aussiebroadwan/creatorhub/pkg/httpx"
)

// authenticator resolves bearer tokens through the auth service and loads
// the caller's profile into the principal.
type authenticator struct {
	auth *service.AuthService
}

func (a *authenticator) Authenticate(ctx context.Context, bearer string) (httpx.Principal, error) {
	actor, err := a.auth.Resolve(ctx, bearer)
	if err != nil {
		if service.KindOf(err) == service.KindUnauthorized {
			return httpx.Principal{}, fmt.Errorf("%w: %v", httpx.ErrInvalidCredential, err)
		}
		return httpx.Principal{}, err
	}
	return httpx.Principal{
		UserID: actor.UserID,
		Email:  actor.Email,
		Role:   string(actor.Role),
		Status: string(actor.Status),
	}, nil
}

// actorFrom turns the principal stored by Authn back into a service actor.
func actorFrom(r *http.Request) service.Actor {
	p, _ := httpx.PrincipalFromContext(r.Context())
	return service.Actor{
		UserID: p.UserID,
		Email:  p.Email,
		Role:   domain.Role(p.Role),
		Status: domain.Status(p.Status),
	}
}
