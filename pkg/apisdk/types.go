package apisdk

import (
	"time"

	"github.com/shopspring/decimal"
)

// ============================================================================
// Common
// ============================================================================

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	// Error is a machine readable code, e.g. "validation_error" or "invite_invalid"
	Error string `json:"error"`

	// ErrorDescription is a human readable description of the error
	ErrorDescription string `json:"error_description,omitempty"`

	// Details maps input field names to problems for validation errors
	Details map[string]string `json:"details,omitempty"`
}

// OKResponse acknowledges an operation that has nothing else to return.
type OKResponse struct {
	OK bool `json:"ok"`
}

// HealthResponse represents the response from health check endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of each dependency.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

// ============================================================================
// Auth
// ============================================================================

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

type RegisterResponse struct {
	OK     bool   `json:"ok"`
	UserID string `json:"userId"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries a bearer token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// MeResponse describes the caller. Role and status are empty when the
// account has no profile.
type MeResponse struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

// ============================================================================
// Admin
// ============================================================================

type CreateInviteRequest struct {
	InfluencerID   string `json:"influencerId"`
	Email          string `json:"email"`
	ExpiresInHours *int   `json:"expiresInHours,omitempty"`
}

type InviteResponse struct {
	OK        bool      `json:"ok"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type LinkRosterRequest struct {
	UserID       string  `json:"userId"`
	ContactEmail *string `json:"contactEmail,omitempty"`
}

type ProfileResponse struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	Role           string    `json:"role"`
	Status         string    `json:"status"`
	FullName       string    `json:"fullName"`
	Platform       *string   `json:"platform,omitempty"`
	Handle         *string   `json:"handle,omitempty"`
	URL            *string   `json:"url,omitempty"`
	FollowerCount  *int64    `json:"followerCount,omitempty"`
	EngagementRate *float64  `json:"engagementRate,omitempty"`
	AvatarURL      *string   `json:"avatarUrl,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ============================================================================
// Onboarding
// ============================================================================

// VerifyResponse never tells an unknown token apart from an expired one.
type VerifyResponse struct {
	Valid bool   `json:"valid"`
	Email string `json:"email,omitempty"`
}

type CompleteRequest struct {
	Token    string  `json:"token"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	FullName *string `json:"fullName,omitempty"`
}

type CompleteResponse struct {
	OK     bool   `json:"ok"`
	UserID string `json:"userId"`
}

// ============================================================================
// Campaigns
// ============================================================================

// CampaignRequest creates a campaign. Budget accepts a number or a numeric
// string and defaults to zero.
type CampaignRequest struct {
	Title       string           `json:"title"`
	Description *string          `json:"description,omitempty"`
	Budget      *decimal.Decimal `json:"budget,omitempty" swaggertype:"number"`
	StartDate   string           `json:"startDate" example:"2024-01-01"`
	EndDate     string           `json:"endDate" example:"2024-01-31"`
}

// CampaignPatchRequest updates only the fields that are present.
type CampaignPatchRequest struct {
	Title       *string          `json:"title,omitempty"`
	Description *string          `json:"description,omitempty"`
	Budget      *decimal.Decimal `json:"budget,omitempty" swaggertype:"number"`
	StartDate   *string          `json:"startDate,omitempty"`
	EndDate     *string          `json:"endDate,omitempty"`
}

type CampaignResponse struct {
	ID          string    `json:"id"`
	OwnerUserID string    `json:"ownerUserId"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Budget      string    `json:"budget" example:"1000.00"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type AssignRequest struct {
	InfluencerID string `json:"influencerId"`
}

type AssignmentResponse struct {
	CampaignID   string `json:"campaignId"`
	InfluencerID string `json:"influencerId"`
}

type AssignedInfluencerResponse struct {
	CampaignID string         `json:"campaignId"`
	AssignedAt time.Time      `json:"assignedAt"`
	Influencer RosterResponse `json:"influencer"`
}

// ============================================================================
// Roster
// ============================================================================

type RosterRequest struct {
	Platform       string   `json:"platform" enums:"youtube,instagram,tiktok,x"`
	Handle         string   `json:"handle"`
	URL            string   `json:"url"`
	ExternalID     *string  `json:"externalId,omitempty"`
	FollowerCount  int64    `json:"followerCount"`
	EngagementRate *float64 `json:"engagementRate,omitempty"`
	AvatarURL      *string  `json:"avatarUrl,omitempty"`
	ContactEmail   *string  `json:"contactEmail,omitempty"`
}

// RosterPatchRequest updates only the fields that are present. An empty
// string clears externalId, avatarUrl or contactEmail; a null clears
// engagementRate.
type RosterPatchRequest struct {
	Platform       *string           `json:"platform,omitempty" enums:"youtube,instagram,tiktok,x"`
	Handle         *string           `json:"handle,omitempty"`
	URL            *string           `json:"url,omitempty"`
	ExternalID     *string           `json:"externalId,omitempty"`
	FollowerCount  *int64            `json:"followerCount,omitempty"`
	EngagementRate Nullable[float64] `json:"engagementRate,omitzero" swaggertype:"number" extensions:"x-nullable"`
	AvatarURL      *string           `json:"avatarUrl,omitempty"`
	ContactEmail   *string           `json:"contactEmail,omitempty"`
}

type RosterResponse struct {
	ID              string     `json:"id"`
	OwnerUserID     string     `json:"ownerUserId"`
	LinkedUserID    *string    `json:"linkedUserId,omitempty"`
	ContactEmail    *string    `json:"contactEmail,omitempty"`
	Platform        string     `json:"platform"`
	Handle          string     `json:"handle"`
	URL             string     `json:"url"`
	ExternalID      *string    `json:"externalId,omitempty"`
	FollowerCount   int64      `json:"followerCount"`
	EngagementRate  *float64   `json:"engagementRate,omitempty"`
	AvatarURL       *string    `json:"avatarUrl,omitempty"`
	LastRefreshedAt *time.Time `json:"lastRefreshedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}
