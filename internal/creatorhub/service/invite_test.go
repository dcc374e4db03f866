package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/domain"
	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/identity"
	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/service"
	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/store"
	"github.com/stretchr/testify/require"
)

func TestInviteIssue(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	mgr := h.manager(t, "m@example.com")
	other := h.manager(t, "o@example.com")
	entry := h.rosterEntry(t, mgr, "alice")

	t.Run("url and default expiry", func(t *testing.T) {
		inv, err := h.invites.Issue(ctx, mgr, service.CreateInviteInput{
			InfluencerID: entry.ID, Email: "A@X.com",
		})
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(inv.URL, "https://app.example.com/onboarding?token="))
		require.Len(t, tokenFromURL(t, inv.URL), 48)
		require.Equal(t, h.now.Add(48*time.Hour), inv.ExpiresAt)

		got, err := h.st.Roster().GetRosterEntry(ctx, entry.ID)
		require.NoError(t, err)
		require.NotNil(t, got.ContactEmail)
		require.Equal(t, "A@X.com", *got.ContactEmail, "stored as given")
	})

	t.Run("tokens are distinct", func(t *testing.T) {
		a := h.issue(t, mgr, entry.ID, "a@x.com", 1)
		b := h.issue(t, mgr, entry.ID, "a@x.com", 1)
		require.NotEqual(t, a, b)
	})

	t.Run("expiry bounds", func(t *testing.T) {
		for _, hours := range []int{0, -1, 169} {
			_, err := h.invites.Issue(ctx, mgr, service.CreateInviteInput{
				InfluencerID: entry.ID, Email: "a@x.com", ExpiresInHours: &hours,
			})
			requireKind(t, err, service.KindValidation)
		}
	})

	t.Run("bad email", func(t *testing.T) {
		_, err := h.invites.Issue(ctx, mgr, service.CreateInviteInput{InfluencerID: entry.ID, Email: "nope"})
		requireKind(t, err, service.KindValidation)
		require.Contains(t, err.(*service.Error).Details, "email")
	})

	t.Run("unknown roster entry", func(t *testing.T) {
		_, err := h.invites.Issue(ctx, mgr, service.CreateInviteInput{InfluencerID: "missing", Email: "a@x.com"})
		requireKind(t, err, service.KindNotFound)
	})

	t.Run("not the owner", func(t *testing.T) {
		_, err := h.invites.Issue(ctx, other, service.CreateInviteInput{InfluencerID: entry.ID, Email: "a@x.com"})
		require.ErrorIs(t, err, service.ErrNotYourRosterEntry)
		requireKind(t, err, service.KindUnauthorized)
	})
}

func TestInviteVerify_ExpiryScenario(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	mgr := h.manager(t, "m@example.com")
	entry := h.rosterEntry(t, mgr, "alice")

	token := h.issue(t, mgr, entry.ID, "a@x.com", 1)

	res, err := h.invites.Verify(ctx, token)
	require.NoError(t, err)
	require.Equal(t, service.InviteCheck{Valid: true, Email: "a@x.com"}, res)

	h.advance(2 * time.Hour)
	res, err = h.invites.Verify(ctx, token)
	require.NoError(t, err)
	require.False(t, res.Valid)
	require.Empty(t, res.Email)
}

func TestInviteEmailKeptAsGiven(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	mgr := h.manager(t, "m@example.com")
	entry := h.rosterEntry(t, mgr, "alice")

	token := h.issue(t, mgr, entry.ID, " Alice@X.com ", 48)

	res, err := h.invites.Verify(ctx, token)
	require.NoError(t, err)
	require.Equal(t, service.InviteCheck{Valid: true, Email: "Alice@X.com"}, res)

	userID, err := h.invites.Complete(ctx, service.CompleteInviteInput{
		Token: token, Email: "alice@x.com", Password: "secret1",
	})
	require.NoError(t, err, "email comparison ignores case")

	e, err := h.st.Roster().GetRosterEntry(ctx, entry.ID)
	require.NoError(t, err)
	require.Equal(t, userID, *e.LinkedUserID)
	require.Equal(t, "Alice@X.com", *e.ContactEmail)

	acct, err := h.st.Accounts().GetAccountByEmail(ctx, "ALICE@x.com")
	require.NoError(t, err)
	require.Equal(t, "alice@x.com", acct.Email, "account emails are normalized")
}

func TestInviteVerify_Boundary(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	mgr := h.manager(t, "m@example.com")
	entry := h.rosterEntry(t, mgr, "alice")

	issuedAt := h.now
	token := h.issue(t, mgr, entry.ID, "a@x.com", 3)

	h.now = issuedAt.Add(3*time.Hour - time.Millisecond)
	res, err := h.invites.Verify(ctx, token)
	require.NoError(t, err)
	require.True(t, res.Valid, "strictly before expiry")

	h.now = issuedAt.Add(3 * time.Hour)
	res, err = h.invites.Verify(ctx, token)
	require.NoError(t, err)
	require.False(t, res.Valid, "at expiry")
}

func TestInviteVerify_InputAndUnknown(t *testing.T) {
	h := newHarness(t)

	_, err := h.invites.Verify(context.Background(), "short")
	requireKind(t, err, service.KindValidation)

	res, err := h.invites.Verify(context.Background(), strings.Repeat("ab", 24))
	require.NoError(t, err)
	require.False(t, res.Valid)
}

func TestInviteComplete(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	mgr := h.manager(t, "m@example.com")
	entry := h.rosterEntry(t, mgr, "alice")
	token := h.issue(t, mgr, entry.ID, "a@x.com", 48)

	userID, err := h.invites.Complete(ctx, service.CompleteInviteInput{
		Token: token, Email: "A@X.COM", Password: "secret1",
	})
	require.NoError(t, err)

	t.Run("profile is an approved influencer snapshot", func(t *testing.T) {
		p, err := h.st.Profiles().GetProfileByUserID(ctx, userID)
		require.NoError(t, err)
		require.Equal(t, domain.RoleInfluencer, p.Role)
		require.Equal(t, domain.StatusApproved, p.Status)
		require.Equal(t, "alice", p.FullName, "falls back to handle")
		require.NotNil(t, p.FollowerCount)
		require.EqualValues(t, 1200, *p.FollowerCount)
	})

	t.Run("roster entry is linked", func(t *testing.T) {
		e, err := h.st.Roster().GetRosterEntry(ctx, entry.ID)
		require.NoError(t, err)
		require.True(t, e.IsLinked())
		require.Equal(t, userID, *e.LinkedUserID)
		require.Equal(t, "a@x.com", *e.ContactEmail)
		require.EqualValues(t, 1200, e.FollowerCount)
	})

	t.Run("account can log in", func(t *testing.T) {
		tok, err := h.auth.Login(ctx, service.LoginInput{Email: "a@x.com", Password: "secret1"})
		require.NoError(t, err)
		actor, err := h.auth.Resolve(ctx, tok.AccessToken)
		require.NoError(t, err)
		require.True(t, actor.IsApprovedInfluencer())
	})

	t.Run("single use", func(t *testing.T) {
		_, err := h.invites.Complete(ctx, service.CompleteInviteInput{
			Token: token, Email: "a@x.com", Password: "secret1",
		})
		require.ErrorIs(t, err, service.ErrInviteInvalid)

		res, err := h.invites.Verify(ctx, token)
		require.NoError(t, err)
		require.False(t, res.Valid)
	})
}

func TestInviteComplete_EmailMismatch(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	mgr := h.manager(t, "m@example.com")
	entry := h.rosterEntry(t, mgr, "alice")
	token := h.issue(t, mgr, entry.ID, "a@x.com", 48)

	_, err := h.invites.Complete(ctx, service.CompleteInviteInput{
		Token: token, Email: "b@x.com", Password: "secret1",
	})
	require.ErrorIs(t, err, service.ErrEmailMismatch)

	// Nothing was consumed or created.
	res, err := h.invites.Verify(ctx, token)
	require.NoError(t, err)
	require.True(t, res.Valid)
	_, err = h.st.Accounts().GetAccountByEmail(ctx, "b@x.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestInviteComplete_Expired(t *testing.T) {
	h := newHarness(t)
	mgr := h.manager(t, "m@example.com")
	entry := h.rosterEntry(t, mgr, "alice")
	token := h.issue(t, mgr, entry.ID, "a@x.com", 1)

	h.advance(time.Hour)
	_, err := h.invites.Complete(context.Background(), service.CompleteInviteInput{
		Token: token, Email: "a@x.com", Password: "secret1",
	})
	require.ErrorIs(t, err, service.ErrInviteInvalid)
}

func TestInviteComplete_SecondTokenRejected(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	mgr := h.manager(t, "m@example.com")
	entry := h.rosterEntry(t, mgr, "alice")

	first := h.issue(t, mgr, entry.ID, "a@x.com", 48)
	second := h.issue(t, mgr, entry.ID, "b@x.com", 48)

	firstUser, err := h.invites.Complete(ctx, service.CompleteInviteInput{
		Token: first, Email: "a@x.com", Password: "secret1", FullName: ptr("Alice"),
	})
	require.NoError(t, err)

	_, err = h.invites.Complete(ctx, service.CompleteInviteInput{
		Token: second, Email: "b@x.com", Password: "secret1",
	})
	require.ErrorIs(t, err, service.ErrAlreadyLinked)

	e, err := h.st.Roster().GetRosterEntry(ctx, entry.ID)
	require.NoError(t, err)
	require.Equal(t, firstUser, *e.LinkedUserID)

	_, err = h.st.Accounts().GetAccountByEmail(ctx, "b@x.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestInviteComplete_EmailTaken(t *testing.T) {
	h := newHarness(t)
	mgr := h.manager(t, "m@example.com")
	entry := h.rosterEntry(t, mgr, "alice")
	token := h.issue(t, mgr, entry.ID, "m@example.com", 48)

	_, err := h.invites.Complete(context.Background(), service.CompleteInviteInput{
		Token: token, Email: "m@example.com", Password: "secret1",
	})
	require.ErrorIs(t, err, service.ErrEmailTaken)
}

// racingIdentity consumes every invite right after the account is created,
// as a concurrent completion would.
type racingIdentity struct {
	*identity.Local
	st store.Store
}

func (r racingIdentity) CreateUser(ctx context.Context, email, password, fullName string, confirmed bool) (string, error) {
	id, err := r.Local.CreateUser(ctx, email, password, fullName, confirmed)
	if err != nil {
		return "", err
	}
	_, err = r.st.Invites().DeleteExpiredInvites(ctx, time.Now().Add(24*365*time.Hour))
	return id, err
}

func TestInviteComplete_CompensatesOnFailure(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	mgr := h.manager(t, "m@example.com")
	entry := h.rosterEntry(t, mgr, "alice")
	token := h.issue(t, mgr, entry.ID, "a@x.com", 48)

	h.invites.Identity = racingIdentity{Local: h.idp, st: h.st}

	_, err := h.invites.Complete(ctx, service.CompleteInviteInput{
		Token: token, Email: "a@x.com", Password: "secret1",
	})
	require.ErrorIs(t, err, service.ErrInviteInvalid)

	_, err = h.st.Accounts().GetAccountByEmail(ctx, "a@x.com")
	require.ErrorIs(t, err, store.ErrNotFound, "account was rolled back")

	e, err := h.st.Roster().GetRosterEntry(ctx, entry.ID)
	require.NoError(t, err)
	require.False(t, e.IsLinked())
}

func TestInviteComplete_Validation(t *testing.T) {
	h := newHarness(t)

	_, err := h.invites.Complete(context.Background(), service.CompleteInviteInput{
		Token: "short", Email: "bad", Password: "123",
	})
	requireKind(t, err, service.KindValidation)

	details := err.(*service.Error).Details
	require.Contains(t, details, "token")
	require.Contains(t, details, "email")
	require.Contains(t, details, "password")
}

func TestInviteSweep(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	mgr := h.manager(t, "m@example.com")
	entry := h.rosterEntry(t, mgr, "alice")

	h.issue(t, mgr, entry.ID, "a@x.com", 1)
	live := h.issue(t, mgr, entry.ID, "a@x.com", 5)

	h.advance(2 * time.Hour)
	n, err := h.invites.Sweep(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	res, err := h.invites.Verify(ctx, live)
	require.NoError(t, err)
	require.True(t, res.Valid)
}

func ptr[T any](v T) *T { return &v }
