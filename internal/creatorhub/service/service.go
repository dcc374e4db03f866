// Package service holds the business rules of creatorhub. Every operation
// takes the acting principal explicitly; nothing is read from ambient state.
package service

import (
	"context"
	"time"

	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/domain"
	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/identity"
)

// IdentityProvider owns credentials. identity.Local is the built-in one.
type IdentityProvider interface {
	CreateUser(ctx context.Context, email, password, fullName string, emailConfirmed bool) (string, error)
	DeleteUser(ctx context.Context, userID string) error
	Resolve(ctx context.Context, bearer string) (identity.Identity, error)
	Login(ctx context.Context, email, password string) (identity.Token, error)
}

// Actor is the resolved caller of an operation. Role and Status are empty
// when the account has no profile.
type Actor struct {
	UserID string
	Email  string
	Role   domain.Role
	Status domain.Status
}

// IsApprovedInfluencer reports whether the actor may see assigned campaigns.
func (a Actor) IsApprovedInfluencer() bool {
	return a.Role == domain.RoleInfluencer && a.Status == domain.StatusApproved
}

// Clock returns the current time. A nil Clock means the wall clock.
type Clock func() time.Time

func (c Clock) Now() time.Time {
	if c == nil {
		return time.Now().UTC()
	}
	return c().UTC()
}
