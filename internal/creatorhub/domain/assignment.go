package domain

import "time"

// Assignment joins a campaign to a roster entry.
type Assignment struct {
	CampaignID   string
	InfluencerID string
	CreatedAt    time.Time
}

// AssignedInfluencer is one row of a campaign's assignment listing.
type AssignedInfluencer struct {
	CampaignID string
	AssignedAt time.Time
	Influencer RosterEntry
}
