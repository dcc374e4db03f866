package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
	// ErrConflict is returned when a conditional write matched no row
	// because the row is no longer in the expected state.
	ErrConflict = errors.New("store: conflict")
)

// Store is the root data access interface. It exposes sub-repositories so a
// transaction-scoped Store can hand out the same repos bound to the tx.
type Store interface {
	Accounts() Accounts
	Profiles() Profiles
	Campaigns() Campaigns
	Roster() Roster
	Assignments() Assignments
	Invites() Invites

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. Inside fn only
	// the tx may be used.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Accounts interface {
	// CreateAccount returns ErrAlreadyExists when the email is taken.
	CreateAccount(ctx context.Context, a domain.Account) error
	GetAccountByID(ctx context.Context, id string) (domain.Account, error)
	// GetAccountByEmail matches the lower-cased email.
	GetAccountByEmail(ctx context.Context, email string) (domain.Account, error)
	DeleteAccount(ctx context.Context, id string) error
}

type Profiles interface {
	GetProfileByUserID(ctx context.Context, userID string) (domain.Profile, error)

	// UpsertProfile inserts the profile, or overwrites every field except id
	// and created_at of the existing profile for the same user.
	UpsertProfile(ctx context.Context, p domain.Profile) error

	// ListProfiles returns profiles with the given role and status, oldest first.
	ListProfiles(ctx context.Context, role domain.Role, status domain.Status) ([]domain.Profile, error)

	// UpdateProfileStatus returns ErrNotFound when no profile exists for userID.
	UpdateProfileStatus(ctx context.Context, userID string, status domain.Status, now time.Time) error
}

type Campaigns interface {
	CreateCampaign(ctx context.Context, c domain.Campaign) error
	GetCampaignByID(ctx context.Context, id string) (domain.Campaign, error)

	// ListCampaigns returns the owner's campaigns, newest first.
	ListCampaigns(ctx context.Context, f domain.CampaignFilter) ([]domain.Campaign, error)

	// UpdateCampaign writes every mutable field where id and owner match,
	// returning ErrNotFound otherwise.
	UpdateCampaign(ctx context.Context, c domain.Campaign) error

	// DeleteCampaign deletes where id and owner match, returning ErrNotFound
	// otherwise. Assignments cascade.
	DeleteCampaign(ctx context.Context, id, ownerUserID string) error

	// ListAssignedCampaigns returns campaigns reachable from userID through
	// an assignment to a roster entry linked to userID. Unlinked roster
	// entries owned by userID also match.
	ListAssignedCampaigns(ctx context.Context, userID string) ([]domain.Campaign, error)

	// GetAssignedCampaign is GetCampaignByID restricted to the same
	// reachability rule as ListAssignedCampaigns.
	GetAssignedCampaign(ctx context.Context, id, userID string) (domain.Campaign, error)
}

type Roster interface {
	CreateRosterEntry(ctx context.Context, r domain.RosterEntry) error
	GetRosterEntry(ctx context.Context, id string) (domain.RosterEntry, error)

	// ListRosterByOwner returns one manager's entries, newest first.
	ListRosterByOwner(ctx context.Context, ownerUserID string) ([]domain.RosterEntry, error)

	// ListRoster returns every entry, newest first.
	ListRoster(ctx context.Context) ([]domain.RosterEntry, error)

	// UpdateRosterEntry writes the editable fields where id and owner match,
	// returning ErrNotFound otherwise. Link state is not touched.
	UpdateRosterEntry(ctx context.Context, r domain.RosterEntry) error

	// DeleteRosterEntry deletes where id and owner match, returning
	// ErrNotFound otherwise. Assignments and invites cascade.
	DeleteRosterEntry(ctx context.Context, id, ownerUserID string) error

	SetContactEmail(ctx context.Context, id, email string, now time.Time) error

	// LinkUnlinked links userID only while the entry has no linked user.
	// It returns ErrNotFound for a missing entry and ErrConflict when the
	// entry is already linked.
	LinkUnlinked(ctx context.Context, id, userID, contactEmail string, now time.Time) error

	// Relink sets the linked user unconditionally. A nil contactEmail keeps
	// the stored one.
	Relink(ctx context.Context, id, userID string, contactEmail *string, now time.Time) error
}

type Assignments interface {
	// AddAssignment ignores an existing (campaign, influencer) pair and
	// reports whether a row was inserted. A missing campaign or roster
	// entry yields ErrNotFound.
	AddAssignment(ctx context.Context, a domain.Assignment) (bool, error)

	// RemoveAssignment reports whether a row was deleted.
	RemoveAssignment(ctx context.Context, campaignID, influencerID string) (bool, error)

	// ListAssignments returns the campaign's roster entries, oldest assignment first.
	ListAssignments(ctx context.Context, campaignID string) ([]domain.AssignedInfluencer, error)
}

type Invites interface {
	CreateInvite(ctx context.Context, inv domain.InviteToken) error

	// GetLiveInviteByTokenHash returns the invite only while expires_at > now.
	GetLiveInviteByTokenHash(ctx context.Context, hash string, now time.Time) (domain.InviteToken, error)

	// ConsumeInvite deletes a still-live invite. It returns ErrNotFound when
	// the invite was already consumed or has expired, which makes
	// redemption single-use under concurrency.
	ConsumeInvite(ctx context.Context, id string, now time.Time) error

	// DeleteExpiredInvites removes every invite with expires_at <= now.
	DeleteExpiredInvites(ctx context.Context, now time.Time) (int64, error)
}
