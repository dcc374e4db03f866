package sqlite

import (
	"context"

	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/domain"
)

type assignmentsRepo struct {
	db DBTX
}

func (r *assignmentsRepo) AddAssignment(ctx context.Context, a domain.Assignment) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO campaign_influencers (campaign_id, influencer_id, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT (campaign_id, influencer_id) DO NOTHING`,
		a.CampaignID, a.InfluencerID, encodeTime(a.CreatedAt),
	)
	if err != nil {
		return false, mapConstraint(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *assignmentsRepo) RemoveAssignment(ctx context.Context, campaignID, influencerID string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM campaign_influencers WHERE campaign_id = ? AND influencer_id = ?`,
		campaignID, influencerID,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *assignmentsRepo) ListAssignments(ctx context.Context, campaignID string) ([]domain.AssignedInfluencer, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT ci.campaign_id, ci.created_at, `+rosterColumns+`
		FROM campaign_influencers ci
		JOIN roster_entries r ON r.id = ci.influencer_id
		WHERE ci.campaign_id = ?
		ORDER BY ci.created_at ASC, r.id ASC`, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.AssignedInfluencer{}
	for rows.Next() {
		var (
			ai         domain.AssignedInfluencer
			assignedAt string
		)
		entry, err := scanRosterEntry(prefixScanner{rows: rows, prefix: []any{&ai.CampaignID, &assignedAt}})
		if err != nil {
			return nil, err
		}
		if ai.AssignedAt, err = decodeTime(assignedAt); err != nil {
			return nil, err
		}
		ai.Influencer = entry
		out = append(out, ai)
	}
	return out, rows.Err()
}

// prefixScanner lets a row mapper scan a row that has extra leading columns.
type prefixScanner struct {
	rows   scanner
	prefix []any
}

func (p prefixScanner) Scan(dest ...any) error {
	return p.rows.Scan(append(p.prefix, dest...)...)
}
