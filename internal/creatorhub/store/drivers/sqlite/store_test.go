package sqlite_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/domain"
	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/store"
	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/store/drivers/sqlite"
	"github.com/aussiebroadwan/creatorhub/pkg/idx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func seedManager(t *testing.T, s store.Store, userID string) {
	t.Helper()
	require.NoError(t, s.Profiles().UpsertProfile(context.Background(), domain.Profile{
		ID: idx.New().String(), UserID: userID,
		Role: domain.RoleManager, Status: domain.StatusApproved, FullName: "M " + userID,
		CreatedAt: t0, UpdatedAt: t0,
	}))
}

func seedCampaign(t *testing.T, s store.Store, owner, title string, at time.Time) domain.Campaign {
	t.Helper()
	c := domain.Campaign{
		ID: idx.NewAt(at).String(), OwnerUserID: owner, Title: title,
		Budget: decimal.RequireFromString("1000"), StartDate: "2024-01-01", EndDate: "2024-01-31",
		CreatedAt: at, UpdatedAt: at,
	}
	require.NoError(t, s.Campaigns().CreateCampaign(context.Background(), c))
	return c
}

func seedRoster(t *testing.T, s store.Store, owner, handle string) domain.RosterEntry {
	t.Helper()
	e := domain.RosterEntry{
		ID: idx.New().String(), OwnerUserID: owner, Platform: domain.PlatformYouTube,
		Handle: handle, URL: "https://youtube.com/@" + handle, FollowerCount: 10,
		CreatedAt: t0, UpdatedAt: t0,
	}
	require.NoError(t, s.Roster().CreateRosterEntry(context.Background(), e))
	return e
}

func TestMigrations_UpDownUp(t *testing.T) {
	s := newStore(t)

	v, dirty, err := s.MigrationVersion()
	require.NoError(t, err)
	require.False(t, dirty)
	require.EqualValues(t, 1, v)

	require.NoError(t, s.MigrateDown(0))
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.ApplyMigrations(), "re-applying is a no-op")
}

func TestAccounts(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	confirmed := t0
	a := domain.Account{
		ID: idx.New().String(), Email: "Alice@Example.com", PasswordHash: "h",
		FullName: "Alice", EmailConfirmedAt: &confirmed, CreatedAt: t0,
	}
	require.NoError(t, s.Accounts().CreateAccount(ctx, a))

	got, err := s.Accounts().GetAccountByEmail(ctx, "ALICE@example.com ")
	require.NoError(t, err)
	require.Equal(t, a.ID, got.ID)
	require.Equal(t, "alice@example.com", got.Email)
	require.NotNil(t, got.EmailConfirmedAt)
	require.True(t, got.EmailConfirmedAt.Equal(t0))

	dup := a
	dup.ID = idx.New().String()
	require.ErrorIs(t, s.Accounts().CreateAccount(ctx, dup), store.ErrAlreadyExists)

	require.NoError(t, s.Accounts().DeleteAccount(ctx, a.ID))
	require.ErrorIs(t, s.Accounts().DeleteAccount(ctx, a.ID), store.ErrNotFound)
	_, err = s.Accounts().GetAccountByID(ctx, a.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestProfiles_UpsertKeepsIdentity(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	first := domain.Profile{
		ID: "p1", UserID: "u1", Role: domain.RoleInfluencer, Status: domain.StatusPending,
		FullName: "Old", CreatedAt: t0, UpdatedAt: t0,
	}
	require.NoError(t, s.Profiles().UpsertProfile(ctx, first))

	platform := domain.PlatformTikTok
	handle := "creator"
	followers := int64(42)
	rate := 0.25
	second := domain.Profile{
		ID: "p2", UserID: "u1", Role: domain.RoleInfluencer, Status: domain.StatusApproved,
		FullName: "New", Platform: &platform, Handle: &handle, FollowerCount: &followers, EngagementRate: &rate,
		CreatedAt: t0.Add(time.Hour), UpdatedAt: t0.Add(time.Hour),
	}
	require.NoError(t, s.Profiles().UpsertProfile(ctx, second))

	got, err := s.Profiles().GetProfileByUserID(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, "p1", got.ID, "upsert keeps the original row id")
	require.True(t, got.CreatedAt.Equal(t0))
	require.Equal(t, domain.StatusApproved, got.Status)
	require.Equal(t, "New", got.FullName)
	require.Equal(t, platform, *got.Platform)
	require.Equal(t, int64(42), *got.FollowerCount)
	require.InDelta(t, 0.25, *got.EngagementRate, 1e-9)
	require.Nil(t, got.URL)
}

func TestProfiles_ListAndStatus(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	for i, status := range []domain.Status{domain.StatusPending, domain.StatusApproved, domain.StatusPending} {
		require.NoError(t, s.Profiles().UpsertProfile(ctx, domain.Profile{
			ID: fmt.Sprintf("p%d", i), UserID: fmt.Sprintf("u%d", i),
			Role: domain.RoleInfluencer, Status: status,
			CreatedAt: t0.Add(time.Duration(i) * time.Minute), UpdatedAt: t0,
		}))
	}
	seedManager(t, s, "m1")

	pending, err := s.Profiles().ListProfiles(ctx, domain.RoleInfluencer, domain.StatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	require.Equal(t, "u0", pending[0].UserID)
	require.Equal(t, "u2", pending[1].UserID)

	require.NoError(t, s.Profiles().UpdateProfileStatus(ctx, "u0", domain.StatusApproved, t0))
	require.ErrorIs(t, s.Profiles().UpdateProfileStatus(ctx, "ghost", domain.StatusApproved, t0), store.ErrNotFound)

	pending, err = s.Profiles().ListProfiles(ctx, domain.RoleInfluencer, domain.StatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
}

func TestCampaigns_ListFilterAndPaging(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	seedManager(t, s, "m1")
	seedManager(t, s, "m2")

	seedCampaign(t, s, "m1", "Spring Launch", t0)
	seedCampaign(t, s, "m1", "Summer sale", t0.Add(time.Minute))
	seedCampaign(t, s, "m1", "100% LAUNCH", t0.Add(2*time.Minute))
	seedCampaign(t, s, "m2", "Launch elsewhere", t0)

	all, err := s.Campaigns().ListCampaigns(ctx, domain.CampaignFilter{OwnerUserID: "m1", Limit: 20})
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "100% LAUNCH", all[0].Title, "newest first")

	launch, err := s.Campaigns().ListCampaigns(ctx, domain.CampaignFilter{OwnerUserID: "m1", Query: "launch", Limit: 20})
	require.NoError(t, err)
	require.Len(t, launch, 2)

	pct, err := s.Campaigns().ListCampaigns(ctx, domain.CampaignFilter{OwnerUserID: "m1", Query: "%", Limit: 20})
	require.NoError(t, err)
	require.Len(t, pct, 1, "LIKE wildcards in the query are literal")

	page, err := s.Campaigns().ListCampaigns(ctx, domain.CampaignFilter{OwnerUserID: "m1", Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	require.Equal(t, "Summer sale", page[0].Title)
}

func TestCampaigns_OwnerScopedWrites(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	seedManager(t, s, "m1")
	seedManager(t, s, "m2")
	c := seedCampaign(t, s, "m1", "Launch", t0)

	hijack := c
	hijack.OwnerUserID = "m2"
	hijack.Title = "Stolen"
	require.ErrorIs(t, s.Campaigns().UpdateCampaign(ctx, hijack), store.ErrNotFound)
	require.ErrorIs(t, s.Campaigns().DeleteCampaign(ctx, c.ID, "m2"), store.ErrNotFound)

	c.Title = "Relaunch"
	c.Budget = decimal.RequireFromString("12.5")
	require.NoError(t, s.Campaigns().UpdateCampaign(ctx, c))

	got, err := s.Campaigns().GetCampaignByID(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, "Relaunch", got.Title)
	require.Equal(t, "12.50", got.Budget.StringFixed(2))

	require.NoError(t, s.Campaigns().DeleteCampaign(ctx, c.ID, "m1"))
	_, err = s.Campaigns().GetCampaignByID(ctx, c.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestCampaigns_RequireOwnerProfile(t *testing.T) {
	s := newStore(t)
	err := s.Campaigns().CreateCampaign(context.Background(), domain.Campaign{
		ID: "c1", OwnerUserID: "nobody", Title: "x", StartDate: "2024-01-01", EndDate: "2024-01-01",
		CreatedAt: t0, UpdatedAt: t0,
	})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestAssignments_IdempotentAndCascade(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	seedManager(t, s, "m1")
	c := seedCampaign(t, s, "m1", "Launch", t0)
	r := seedRoster(t, s, "m1", "alpha")

	inserted, err := s.Assignments().AddAssignment(ctx, domain.Assignment{CampaignID: c.ID, InfluencerID: r.ID, CreatedAt: t0})
	require.NoError(t, err)
	require.True(t, inserted)

	inserted, err = s.Assignments().AddAssignment(ctx, domain.Assignment{CampaignID: c.ID, InfluencerID: r.ID, CreatedAt: t0})
	require.NoError(t, err)
	require.False(t, inserted)

	list, err := s.Assignments().ListAssignments(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, r.ID, list[0].Influencer.ID)
	require.Equal(t, "alpha", list[0].Influencer.Handle)

	_, err = s.Assignments().AddAssignment(ctx, domain.Assignment{CampaignID: c.ID, InfluencerID: "missing", CreatedAt: t0})
	require.ErrorIs(t, err, store.ErrNotFound)

	// Deleting the roster entry removes its assignments.
	require.NoError(t, s.Roster().DeleteRosterEntry(ctx, r.ID, "m1"))
	list, err = s.Assignments().ListAssignments(ctx, c.ID)
	require.NoError(t, err)
	require.Empty(t, list)

	removed, err := s.Assignments().RemoveAssignment(ctx, c.ID, r.ID)
	require.NoError(t, err)
	require.False(t, removed)
}

func TestCampaigns_AssignedReachability(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	seedManager(t, s, "m1")
	c1 := seedCampaign(t, s, "m1", "Linked", t0)
	c2 := seedCampaign(t, s, "m1", "Legacy", t0.Add(time.Minute))
	c3 := seedCampaign(t, s, "m1", "Other", t0.Add(2*time.Minute))

	linked := seedRoster(t, s, "m1", "linked")
	require.NoError(t, s.Roster().LinkUnlinked(ctx, linked.ID, "inf1", "i@x.com", t0))
	legacy := seedRoster(t, s, "inf1", "legacy") // unlinked, owner is the influencer
	other := seedRoster(t, s, "m1", "other")

	for _, a := range []domain.Assignment{
		{CampaignID: c1.ID, InfluencerID: linked.ID, CreatedAt: t0},
		{CampaignID: c2.ID, InfluencerID: legacy.ID, CreatedAt: t0},
		{CampaignID: c3.ID, InfluencerID: other.ID, CreatedAt: t0},
		{CampaignID: c1.ID, InfluencerID: legacy.ID, CreatedAt: t0},
	} {
		_, err := s.Assignments().AddAssignment(ctx, a)
		require.NoError(t, err)
	}

	got, err := s.Campaigns().ListAssignedCampaigns(ctx, "inf1")
	require.NoError(t, err)
	require.Len(t, got, 2, "campaign reachable twice is listed once")
	require.Equal(t, c2.ID, got[0].ID)
	require.Equal(t, c1.ID, got[1].ID)

	_, err = s.Campaigns().GetAssignedCampaign(ctx, c1.ID, "inf1")
	require.NoError(t, err)
	_, err = s.Campaigns().GetAssignedCampaign(ctx, c3.ID, "inf1")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestRoster_Linking(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	r := seedRoster(t, s, "m1", "alpha")

	require.NoError(t, s.Roster().LinkUnlinked(ctx, r.ID, "u1", "a@x.com", t0))
	require.ErrorIs(t, s.Roster().LinkUnlinked(ctx, r.ID, "u2", "b@x.com", t0), store.ErrConflict)
	require.ErrorIs(t, s.Roster().LinkUnlinked(ctx, "missing", "u2", "b@x.com", t0), store.ErrNotFound)

	got, err := s.Roster().GetRosterEntry(ctx, r.ID)
	require.NoError(t, err)
	require.Equal(t, "u1", *got.LinkedUserID)
	require.Equal(t, "a@x.com", *got.ContactEmail)

	require.NoError(t, s.Roster().Relink(ctx, r.ID, "u2", nil, t0))
	got, err = s.Roster().GetRosterEntry(ctx, r.ID)
	require.NoError(t, err)
	require.Equal(t, "u2", *got.LinkedUserID)
	require.Equal(t, "a@x.com", *got.ContactEmail, "nil contact email keeps the stored one")
}

func TestInvites_LiveWindowAndConsume(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	r := seedRoster(t, s, "m1", "alpha")

	inv := domain.InviteToken{
		ID: "i1", TokenHash: "hash", InfluencerID: r.ID, Email: "a@x.com",
		ExpiresAt: t0.Add(time.Hour), CreatedAt: t0,
	}
	require.NoError(t, s.Invites().CreateInvite(ctx, inv))

	_, err := s.Invites().GetLiveInviteByTokenHash(ctx, "hash", t0.Add(time.Hour-time.Nanosecond))
	require.NoError(t, err)
	_, err = s.Invites().GetLiveInviteByTokenHash(ctx, "hash", t0.Add(time.Hour))
	require.ErrorIs(t, err, store.ErrNotFound, "expiry is exclusive")

	require.ErrorIs(t, s.Invites().ConsumeInvite(ctx, "i1", t0.Add(2*time.Hour)), store.ErrNotFound)
	require.NoError(t, s.Invites().ConsumeInvite(ctx, "i1", t0))
	require.ErrorIs(t, s.Invites().ConsumeInvite(ctx, "i1", t0), store.ErrNotFound)
}

func TestInvites_SweepAndCascade(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	r := seedRoster(t, s, "m1", "alpha")

	for i, ttl := range []time.Duration{time.Hour, 2 * time.Hour, 3 * time.Hour} {
		require.NoError(t, s.Invites().CreateInvite(ctx, domain.InviteToken{
			ID: fmt.Sprintf("i%d", i), TokenHash: fmt.Sprintf("h%d", i), InfluencerID: r.ID,
			Email: "a@x.com", ExpiresAt: t0.Add(ttl), CreatedAt: t0,
		}))
	}

	n, err := s.Invites().DeleteExpiredInvites(ctx, t0.Add(2*time.Hour))
	require.NoError(t, err)
	require.EqualValues(t, 2, n)

	require.NoError(t, s.Roster().DeleteRosterEntry(ctx, r.ID, "m1"))
	_, err = s.Invites().GetLiveInviteByTokenHash(ctx, "h2", t0)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestWithTx_RollbackOnError(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	seedManager(t, s, "m1")

	boom := fmt.Errorf("boom")
	err := s.WithTx(ctx, func(tx store.Tx) error {
		c := domain.Campaign{
			ID: "c1", OwnerUserID: "m1", Title: "x", StartDate: "2024-01-01", EndDate: "2024-01-02",
			CreatedAt: t0, UpdatedAt: t0,
		}
		require.NoError(t, tx.Campaigns().CreateCampaign(ctx, c))
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = s.Campaigns().GetCampaignByID(ctx, "c1")
	require.ErrorIs(t, err, store.ErrNotFound)
}
