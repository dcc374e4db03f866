package domain

import "time"

// InviteToken is a single-use onboarding credential for one roster entry.
// Only the fingerprint of the token is stored.
type InviteToken struct {
	ID           string
	TokenHash    string
	InfluencerID string
	Email        string
	ExpiresAt    time.Time
	CreatedAt    time.Time
}

// LiveAt reports whether the invite can still be redeemed at now.
func (i InviteToken) LiveAt(now time.Time) bool {
	return now.Before(i.ExpiresAt)
}
