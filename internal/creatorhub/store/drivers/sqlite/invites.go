package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/domain"
)

type invitesRepo struct {
	db DBTX
}

const inviteColumns = `id, token_hash, influencer_id, email, expires_at, created_at`

func (r *invitesRepo) CreateInvite(ctx context.Context, inv domain.InviteToken) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO invite_tokens (`+inviteColumns+`)
		VALUES (?, ?, ?, ?, ?, ?)`,
		inv.ID,
		inv.TokenHash,
		inv.InfluencerID,
		inv.Email,
		encodeTime(inv.ExpiresAt),
		encodeTime(inv.CreatedAt),
	)
	return mapConstraint(err)
}

func (r *invitesRepo) GetLiveInviteByTokenHash(ctx context.Context, hash string, now time.Time) (domain.InviteToken, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+inviteColumns+` FROM invite_tokens
		WHERE token_hash = ? AND expires_at > ?`,
		hash, encodeTime(now),
	)

	var (
		inv              domain.InviteToken
		expires, created string
	)
	if err := row.Scan(&inv.ID, &inv.TokenHash, &inv.InfluencerID, &inv.Email, &expires, &created); err != nil {
		return domain.InviteToken{}, mapNotFound(err)
	}

	var err error
	if inv.ExpiresAt, err = decodeTime(expires); err != nil {
		return domain.InviteToken{}, err
	}
	if inv.CreatedAt, err = decodeTime(created); err != nil {
		return domain.InviteToken{}, err
	}
	return inv, nil
}

func (r *invitesRepo) ConsumeInvite(ctx context.Context, id string, now time.Time) error {
	return expectOne(r.db.ExecContext(ctx,
		`DELETE FROM invite_tokens WHERE id = ? AND expires_at > ?`,
		id, encodeTime(now),
	))
}

func (r *invitesRepo) DeleteExpiredInvites(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM invite_tokens WHERE expires_at <= ?`, encodeTime(now))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
