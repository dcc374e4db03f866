package service_test

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/domain"
	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/identity"
	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/service"
	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/store/drivers/sqlite"
	"github.com/aussiebroadwan/creatorhub/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "service")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

type harness struct {
	st  *sqlite.Store
	idp *identity.Local
	now time.Time

	auth        *service.AuthService
	admin       *service.AdminService
	invites     *service.InviteService
	roster      *service.RosterService
	campaigns   *service.CampaignService
	assignments *service.AssignmentService
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	_, key, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	idp, err := identity.NewLocal(st, key, "creatorhub", time.Hour)
	require.NoError(t, err)

	h := &harness{st: st, idp: idp, now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	clock := service.Clock(func() time.Time { return h.now })
	idp.Clock = clock

	h.auth = &service.AuthService{Store: st, Identity: idp, Clock: clock}
	h.admin = &service.AdminService{Store: st, Clock: clock}
	h.invites = &service.InviteService{
		Store: st, Identity: idp, Clock: clock,
		AppBaseURL: "https://app.example.com/", DefaultTTLHours: 48,
	}
	h.roster = &service.RosterService{Store: st, Clock: clock}
	h.campaigns = &service.CampaignService{Store: st, Clock: clock}
	h.assignments = &service.AssignmentService{Store: st, Clock: clock}
	return h
}

func (h *harness) advance(d time.Duration) { h.now = h.now.Add(d) }

func (h *harness) manager(t *testing.T, email string) service.Actor {
	t.Helper()
	id, err := h.auth.RegisterManager(context.Background(), service.RegisterManagerInput{
		Email: email, Password: "secret1", FullName: "Manager " + email,
	})
	require.NoError(t, err)
	return service.Actor{UserID: id, Email: email, Role: domain.RoleManager, Status: domain.StatusApproved}
}

func (h *harness) rosterEntry(t *testing.T, owner service.Actor, handle string) domain.RosterEntry {
	t.Helper()
	e, err := h.roster.Create(context.Background(), owner, service.RosterInput{
		Platform: domain.PlatformYouTube, Handle: handle,
		URL: "https://youtube.com/@" + handle, FollowerCount: 1200,
	})
	require.NoError(t, err)
	return e
}

func (h *harness) campaign(t *testing.T, owner service.Actor, title string) domain.Campaign {
	t.Helper()
	c, err := h.campaigns.Create(context.Background(), owner, service.CampaignInput{
		Title: title, StartDate: "2024-01-01", EndDate: "2024-01-31",
	})
	require.NoError(t, err)
	return c
}

func (h *harness) issue(t *testing.T, owner service.Actor, entryID, email string, hours int) string {
	t.Helper()
	inv, err := h.invites.Issue(context.Background(), owner, service.CreateInviteInput{
		InfluencerID: entryID, Email: email, ExpiresInHours: &hours,
	})
	require.NoError(t, err)
	return tokenFromURL(t, inv.URL)
}

func tokenFromURL(t *testing.T, raw string) string {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u.Query().Get("token")
}

func requireKind(t *testing.T, err error, kind service.Kind) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, kind, service.KindOf(err), "got %v", err)
}
