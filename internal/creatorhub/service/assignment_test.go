package service_test

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestAssignmentScenario_IdempotentAdd(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	mgr := h.manager(t, "m@example.com")
	e := h.rosterEntry(t, mgr, "alice")

	budget := decimal.NewFromInt(1000)
	c, err := h.campaigns.Create(ctx, mgr, service.CampaignInput{
		Title: "Launch", StartDate: "2024-01-01", EndDate: "2024-01-31", Budget: &budget,
	})
	require.NoError(t, err)

	_, err = h.assignments.Add(ctx, mgr, c.ID, e.ID)
	require.NoError(t, err)
	_, err = h.assignments.Add(ctx, mgr, c.ID, e.ID)
	require.NoError(t, err)

	rows, err := h.assignments.List(ctx, mgr, c.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, e.ID, rows[0].Influencer.ID)
	require.Equal(t, "alice", rows[0].Influencer.Handle)
}

func TestAssignmentOwnership(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	a := h.manager(t, "a@example.com")
	b := h.manager(t, "b@example.com")
	c := h.campaign(t, a, "Launch")
	e := h.rosterEntry(t, a, "alice")

	_, err := h.assignments.Add(ctx, b, c.ID, e.ID)
	require.ErrorIs(t, err, service.ErrNotYourCampaign)
	requireKind(t, err, service.KindForbidden)

	_, err = h.assignments.Add(ctx, a, c.ID, e.ID)
	require.NoError(t, err)

	err = h.assignments.Remove(ctx, b, c.ID, e.ID)
	require.ErrorIs(t, err, service.ErrNotYourCampaign)

	rows, err := h.assignments.List(ctx, b, c.ID)
	require.NoError(t, err)
	require.NotNil(t, rows)
	require.Empty(t, rows)

	_, err = h.assignments.Add(ctx, a, "missing-campaign", e.ID)
	require.ErrorIs(t, err, service.ErrNotYourCampaign)
}

func TestAssignmentAnyManagersRoster(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	a := h.manager(t, "a@example.com")
	b := h.manager(t, "b@example.com")
	c := h.campaign(t, a, "Launch")
	foreign := h.rosterEntry(t, b, "bob")

	_, err := h.assignments.Add(ctx, a, c.ID, foreign.ID)
	require.NoError(t, err)

	_, err = h.assignments.Add(ctx, a, c.ID, "missing-entry")
	requireKind(t, err, service.KindNotFound)
}

func TestAssignmentRemove(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	mgr := h.manager(t, "m@example.com")
	c := h.campaign(t, mgr, "Launch")
	e := h.rosterEntry(t, mgr, "alice")

	_, err := h.assignments.Add(ctx, mgr, c.ID, e.ID)
	require.NoError(t, err)

	require.NoError(t, h.assignments.Remove(ctx, mgr, c.ID, e.ID))
	require.NoError(t, h.assignments.Remove(ctx, mgr, c.ID, e.ID), "removing twice is fine")

	rows, err := h.assignments.List(ctx, mgr, c.ID)
	require.NoError(t, err)
	require.Empty(t, rows)
}
