package domain

// Role is what a profile is allowed to do.
type Role string

const (
	RoleManager    Role = "manager"
	RoleInfluencer Role = "influencer"
)

func (r Role) Valid() bool {
	return r == RoleManager || r == RoleInfluencer
}

// Status is the approval state of a profile.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Platform is the social network a roster entry lives on.
type Platform string

const (
	PlatformYouTube   Platform = "youtube"
	PlatformInstagram Platform = "instagram"
	PlatformTikTok    Platform = "tiktok"
	PlatformX         Platform = "x"
)

// Platforms lists every supported platform.
var Platforms = []Platform{PlatformYouTube, PlatformInstagram, PlatformTikTok, PlatformX}

func (p Platform) Valid() bool {
	switch p {
	case PlatformYouTube, PlatformInstagram, PlatformTikTok, PlatformX:
		return true
	}
	return false
}
