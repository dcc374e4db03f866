package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire and storage format of campaign dates.
const DateLayout = time.DateOnly

type Campaign struct {
	ID          string
	OwnerUserID string
	Title       string
	Description *string
	Budget      decimal.Decimal // non-negative, two decimal places
	StartDate   string          // YYYY-MM-DD
	EndDate     string          // YYYY-MM-DD
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CampaignFilter narrows a manager's campaign listing.
type CampaignFilter struct {
	OwnerUserID string
	Query       string // case-insensitive title substring, empty for all
	Limit       int
	Offset      int
}
