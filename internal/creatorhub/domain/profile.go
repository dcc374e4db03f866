package domain

import "time"

// Profile maps a user id to its role, approval status and display fields.
// The creator fields are a snapshot of the linked roster entry taken at
// onboarding; the roster stays authoritative.
type Profile struct {
	ID       string
	UserID   string
	Role     Role
	Status   Status
	FullName string

	Platform       *Platform
	Handle         *string
	URL            *string
	FollowerCount  *int64
	EngagementRate *float64
	AvatarURL      *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
