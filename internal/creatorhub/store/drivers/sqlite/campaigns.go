package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/domain"
	"github.com/shopspring/decimal"
)

type campaignsRepo struct {
	db DBTX
}

const campaignColumns = `c.id, c.owner_user_id, c.title, c.description, c.budget,
	c.start_date, c.end_date, c.created_at, c.updated_at`

// assignedToUser matches roster entries reachable by an influencer: linked
// to them, or (legacy rows) unlinked and owned by them.
const assignedToUser = `
	FROM campaigns c
	JOIN campaign_influencers ci ON ci.campaign_id = c.id
	JOIN roster_entries r ON r.id = ci.influencer_id
	WHERE (r.linked_user_id = ? OR (r.linked_user_id IS NULL AND r.owner_user_id = ?))`

func (r *campaignsRepo) CreateCampaign(ctx context.Context, c domain.Campaign) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO campaigns (id, owner_user_id, title, description, budget, start_date, end_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID,
		c.OwnerUserID,
		c.Title,
		mapOptionalString(c.Description),
		c.Budget.StringFixed(2),
		c.StartDate,
		c.EndDate,
		encodeTime(c.CreatedAt),
		encodeTime(c.UpdatedAt),
	)
	return mapConstraint(err)
}

func (r *campaignsRepo) GetCampaignByID(ctx context.Context, id string) (domain.Campaign, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+campaignColumns+` FROM campaigns c WHERE c.id = ?`, id)
	return scanCampaign(row)
}

func (r *campaignsRepo) ListCampaigns(ctx context.Context, f domain.CampaignFilter) ([]domain.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns c WHERE c.owner_user_id = ?`
	args := []any{f.OwnerUserID}

	if q := strings.TrimSpace(f.Query); q != "" {
		query += ` AND ` + foldFunc + `(c.title) LIKE ? ESCAPE '\'`
		args = append(args, "%"+escapeLike(strings.ToLower(q))+"%")
	}

	query += ` ORDER BY c.created_at DESC, c.id DESC LIMIT ? OFFSET ?`
	args = append(args, f.Limit, f.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectCampaigns(rows)
}

func (r *campaignsRepo) UpdateCampaign(ctx context.Context, c domain.Campaign) error {
	return expectOne(r.db.ExecContext(ctx, `
		UPDATE campaigns SET
			title       = ?,
			description = ?,
			budget      = ?,
			start_date  = ?,
			end_date    = ?,
			updated_at  = ?
		WHERE id = ? AND owner_user_id = ?`,
		c.Title,
		mapOptionalString(c.Description),
		c.Budget.StringFixed(2),
		c.StartDate,
		c.EndDate,
		encodeTime(c.UpdatedAt),
		c.ID,
		c.OwnerUserID,
	))
}

func (r *campaignsRepo) DeleteCampaign(ctx context.Context, id, ownerUserID string) error {
	return expectOne(r.db.ExecContext(ctx,
		`DELETE FROM campaigns WHERE id = ? AND owner_user_id = ?`, id, ownerUserID,
	))
}

func (r *campaignsRepo) ListAssignedCampaigns(ctx context.Context, userID string) ([]domain.Campaign, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT DISTINCT `+campaignColumns+assignedToUser+` ORDER BY c.created_at DESC, c.id DESC`,
		userID, userID,
	)
	if err != nil {
		return nil, err
	}
	return collectCampaigns(rows)
}

func (r *campaignsRepo) GetAssignedCampaign(ctx context.Context, id, userID string) (domain.Campaign, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT DISTINCT `+campaignColumns+assignedToUser+` AND c.id = ?`,
		userID, userID, id,
	)
	return scanCampaign(row)
}

func collectCampaigns(rows *sql.Rows) ([]domain.Campaign, error) {
	defer rows.Close()

	out := []domain.Campaign{}
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanCampaign(s scanner) (domain.Campaign, error) {
	var (
		c                domain.Campaign
		description      sql.NullString
		budget           string
		created, updated string
	)
	err := s.Scan(
		&c.ID, &c.OwnerUserID, &c.Title, &description, &budget,
		&c.StartDate, &c.EndDate, &created, &updated,
	)
	if err != nil {
		return domain.Campaign{}, mapNotFound(err)
	}

	c.Description = mapNullStringPtr(description)
	if c.Budget, err = decimal.NewFromString(budget); err != nil {
		return domain.Campaign{}, fmt.Errorf("sqlite: bad budget %q: %w", budget, err)
	}
	if c.CreatedAt, err = decodeTime(created); err != nil {
		return domain.Campaign{}, err
	}
	if c.UpdatedAt, err = decodeTime(updated); err != nil {
		return domain.Campaign{}, err
	}
	return c, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
