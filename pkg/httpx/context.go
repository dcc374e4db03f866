package httpx

import "context"

type ctxKey string

const ctxKeyPrincipal ctxKey = "principal"

// Principal is the resolved caller of a request. Role and Status are empty
// when the account has no profile yet.
type Principal struct {
	UserID string
	Email  string
	Role   string
	Status string
}

// HasRole reports whether the principal holds role.
func (p Principal) HasRole(role string) bool {
	return p.Role != "" && p.Role == role
}

// WithPrincipal returns a context carrying p.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, ctxKeyPrincipal, p)
}

// PrincipalFromContext returns the principal stored by Authn, if any.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(ctxKeyPrincipal).(Principal)
	return p, ok
}
