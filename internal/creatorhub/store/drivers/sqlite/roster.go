package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/domain"
	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/store"
)

type rosterRepo struct {
	db DBTX
}

const rosterColumns = `r.id, r.owner_user_id, r.linked_user_id, r.contact_email, r.platform,
	r.handle, r.url, r.external_id, r.follower_count, r.engagement_rate, r.avatar_url,
	r.last_refreshed_at, r.created_at, r.updated_at`

func (r *rosterRepo) CreateRosterEntry(ctx context.Context, e domain.RosterEntry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO roster_entries (
			id, owner_user_id, linked_user_id, contact_email, platform, handle, url,
			external_id, follower_count, engagement_rate, avatar_url, last_refreshed_at,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID,
		e.OwnerUserID,
		mapOptionalString(e.LinkedUserID),
		mapOptionalString(e.ContactEmail),
		string(e.Platform),
		e.Handle,
		e.URL,
		mapOptionalString(e.ExternalID),
		e.FollowerCount,
		mapOptionalFloat(e.EngagementRate),
		mapOptionalString(e.AvatarURL),
		encodeTimePtr(e.LastRefreshedAt),
		encodeTime(e.CreatedAt),
		encodeTime(e.UpdatedAt),
	)
	return mapConstraint(err)
}

func (r *rosterRepo) GetRosterEntry(ctx context.Context, id string) (domain.RosterEntry, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+rosterColumns+` FROM roster_entries r WHERE r.id = ?`, id)
	return scanRosterEntry(row)
}

func (r *rosterRepo) ListRosterByOwner(ctx context.Context, ownerUserID string) ([]domain.RosterEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+rosterColumns+` FROM roster_entries r
		WHERE r.owner_user_id = ?
		ORDER BY r.created_at DESC, r.id DESC`, ownerUserID)
	if err != nil {
		return nil, err
	}
	return collectRoster(rows)
}

func (r *rosterRepo) ListRoster(ctx context.Context) ([]domain.RosterEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+rosterColumns+` FROM roster_entries r
		ORDER BY r.created_at DESC, r.id DESC`)
	if err != nil {
		return nil, err
	}
	return collectRoster(rows)
}

func (r *rosterRepo) UpdateRosterEntry(ctx context.Context, e domain.RosterEntry) error {
	return expectOne(r.db.ExecContext(ctx, `
		UPDATE roster_entries SET
			contact_email   = ?,
			platform        = ?,
			handle          = ?,
			url             = ?,
			external_id     = ?,
			follower_count  = ?,
			engagement_rate = ?,
			avatar_url      = ?,
			updated_at      = ?
		WHERE id = ? AND owner_user_id = ?`,
		mapOptionalString(e.ContactEmail),
		string(e.Platform),
		e.Handle,
		e.URL,
		mapOptionalString(e.ExternalID),
		e.FollowerCount,
		mapOptionalFloat(e.EngagementRate),
		mapOptionalString(e.AvatarURL),
		encodeTime(e.UpdatedAt),
		e.ID,
		e.OwnerUserID,
	))
}

func (r *rosterRepo) DeleteRosterEntry(ctx context.Context, id, ownerUserID string) error {
	return expectOne(r.db.ExecContext(ctx,
		`DELETE FROM roster_entries WHERE id = ? AND owner_user_id = ?`, id, ownerUserID,
	))
}

func (r *rosterRepo) SetContactEmail(ctx context.Context, id, email string, now time.Time) error {
	return expectOne(r.db.ExecContext(ctx,
		`UPDATE roster_entries SET contact_email = ?, updated_at = ? WHERE id = ?`,
		email, encodeTime(now), id,
	))
}

func (r *rosterRepo) LinkUnlinked(ctx context.Context, id, userID, contactEmail string, now time.Time) error {
	err := expectOne(r.db.ExecContext(ctx, `
		UPDATE roster_entries
		SET linked_user_id = ?, contact_email = ?, updated_at = ?
		WHERE id = ? AND linked_user_id IS NULL`,
		userID, contactEmail, encodeTime(now), id,
	))
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	// Nothing matched: tell a missing row apart from one that is already linked.
	if _, getErr := r.GetRosterEntry(ctx, id); getErr != nil {
		return getErr
	}
	return store.ErrConflict
}

func (r *rosterRepo) Relink(ctx context.Context, id, userID string, contactEmail *string, now time.Time) error {
	return expectOne(r.db.ExecContext(ctx, `
		UPDATE roster_entries
		SET linked_user_id = ?, contact_email = COALESCE(?, contact_email), updated_at = ?
		WHERE id = ?`,
		userID, mapOptionalString(contactEmail), encodeTime(now), id,
	))
}

func collectRoster(rows *sql.Rows) ([]domain.RosterEntry, error) {
	defer rows.Close()

	out := []domain.RosterEntry{}
	for rows.Next() {
		e, err := scanRosterEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func scanRosterEntry(s scanner) (domain.RosterEntry, error) {
	var (
		e                      domain.RosterEntry
		platform               string
		linked, contact, extID sql.NullString
		avatar, refreshed      sql.NullString
		engagement             sql.NullFloat64
		created, updated       string
	)
	err := s.Scan(
		&e.ID, &e.OwnerUserID, &linked, &contact, &platform,
		&e.Handle, &e.URL, &extID, &e.FollowerCount, &engagement, &avatar,
		&refreshed, &created, &updated,
	)
	if err != nil {
		return domain.RosterEntry{}, mapNotFound(err)
	}

	e.Platform = domain.Platform(platform)
	e.LinkedUserID = mapNullStringPtr(linked)
	e.ContactEmail = mapNullStringPtr(contact)
	e.ExternalID = mapNullStringPtr(extID)
	e.EngagementRate = mapNullFloatPtr(engagement)
	e.AvatarURL = mapNullStringPtr(avatar)

	if e.LastRefreshedAt, err = decodeTimePtr(refreshed); err != nil {
		return domain.RosterEntry{}, err
	}
	if e.CreatedAt, err = decodeTime(created); err != nil {
		return domain.RosterEntry{}, err
	}
	if e.UpdatedAt, err = decodeTime(updated); err != nil {
		return domain.RosterEntry{}, err
	}
	return e, nil
}
