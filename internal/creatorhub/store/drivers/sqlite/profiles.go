package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/domain"
)

type profilesRepo struct {
	db DBTX
}

const profileColumns = `id, user_id, role, status, full_name, platform, handle, url,
	follower_count, engagement_rate, avatar_url, created_at, updated_at`

func (r *profilesRepo) GetProfileByUserID(ctx context.Context, userID string) (domain.Profile, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+profileColumns+` FROM profiles WHERE user_id = ?`, userID)
	return scanProfile(row)
}

func (r *profilesRepo) UpsertProfile(ctx context.Context, p domain.Profile) error {
	var platform sql.NullString
	if p.Platform != nil {
		platform = sql.NullString{String: string(*p.Platform), Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO profiles (`+profileColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			role            = excluded.role,
			status          = excluded.status,
			full_name       = excluded.full_name,
			platform        = excluded.platform,
			handle          = excluded.handle,
			url             = excluded.url,
			follower_count  = excluded.follower_count,
			engagement_rate = excluded.engagement_rate,
			avatar_url      = excluded.avatar_url,
			updated_at      = excluded.updated_at`,
		p.ID,
		p.UserID,
		string(p.Role),
		string(p.Status),
		p.FullName,
		platform,
		mapOptionalString(p.Handle),
		mapOptionalString(p.URL),
		mapOptionalInt(p.FollowerCount),
		mapOptionalFloat(p.EngagementRate),
		mapOptionalString(p.AvatarURL),
		encodeTime(p.CreatedAt),
		encodeTime(p.UpdatedAt),
	)
	return mapConstraint(err)
}

func (r *profilesRepo) ListProfiles(ctx context.Context, role domain.Role, status domain.Status) ([]domain.Profile, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+profileColumns+` FROM profiles
		WHERE role = ? AND status = ?
		ORDER BY created_at ASC, id ASC`,
		string(role), string(status),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Profile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *profilesRepo) UpdateProfileStatus(ctx context.Context, userID string, status domain.Status, now time.Time) error {
	return expectOne(r.db.ExecContext(ctx,
		`UPDATE profiles SET status = ?, updated_at = ? WHERE user_id = ?`,
		string(status), encodeTime(now), userID,
	))
}

func scanProfile(s scanner) (domain.Profile, error) {
	var (
		p                domain.Profile
		role, status     string
		platform         sql.NullString
		handle, url, av  sql.NullString
		followers        sql.NullInt64
		engagement       sql.NullFloat64
		created, updated string
	)
	err := s.Scan(
		&p.ID, &p.UserID, &role, &status, &p.FullName,
		&platform, &handle, &url, &followers, &engagement, &av,
		&created, &updated,
	)
	if err != nil {
		return domain.Profile{}, mapNotFound(err)
	}

	p.Role = domain.Role(role)
	p.Status = domain.Status(status)
	if platform.Valid {
		pl := domain.Platform(platform.String)
		p.Platform = &pl
	}
	p.Handle = mapNullStringPtr(handle)
	p.URL = mapNullStringPtr(url)
	p.FollowerCount = mapNullIntPtr(followers)
	p.EngagementRate = mapNullFloatPtr(engagement)
	p.AvatarURL = mapNullStringPtr(av)

	if p.CreatedAt, err = decodeTime(created); err != nil {
		return domain.Profile{}, err
	}
	if p.UpdatedAt, err = decodeTime(updated); err != nil {
		return domain.Profile{}, err
	}
	return p, nil
}
