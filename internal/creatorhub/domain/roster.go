package domain

import "time"

// RosterEntry is a manager's record of a creator, with or without an account.
type RosterEntry struct {
	ID              string
	OwnerUserID     string
	LinkedUserID    *string
	ContactEmail    *string
	Platform        Platform
	Handle          string
	URL             string
	ExternalID      *string
	FollowerCount   int64
	EngagementRate  *float64
	AvatarURL       *string
	LastRefreshedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsLinked reports whether an influencer account has claimed the entry.
func (r RosterEntry) IsLinked() bool {
	return r.LinkedUserID != nil && *r.LinkedUserID != ""
}
