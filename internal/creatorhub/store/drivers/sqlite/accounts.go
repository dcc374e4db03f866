package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/domain"
)

type accountsRepo struct {
	db DBTX
}

const accountColumns = `id, email, password_hash, full_name, email_confirmed_at, created_at`

func (r *accountsRepo) CreateAccount(ctx context.Context, a domain.Account) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO accounts (`+accountColumns+`)
		VALUES (?, ?, ?, ?, ?, ?)`,
		a.ID,
		strings.ToLower(a.Email),
		a.PasswordHash,
		a.FullName,
		encodeTimePtr(a.EmailConfirmedAt),
		encodeTime(a.CreatedAt),
	)
	return mapConstraint(err)
}

func (r *accountsRepo) GetAccountByID(ctx context.Context, id string) (domain.Account, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = ?`, id)
	return scanAccount(row)
}

func (r *accountsRepo) GetAccountByEmail(ctx context.Context, email string) (domain.Account, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE email = ?`,
		strings.ToLower(strings.TrimSpace(email)),
	)
	return scanAccount(row)
}

func (r *accountsRepo) DeleteAccount(ctx context.Context, id string) error {
	return expectOne(r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = ?`, id))
}

func scanAccount(s scanner) (domain.Account, error) {
	var (
		a         domain.Account
		confirmed sql.NullString
		created   string
	)
	if err := s.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.FullName, &confirmed, &created); err != nil {
		return domain.Account{}, mapNotFound(err)
	}

	var err error
	if a.EmailConfirmedAt, err = decodeTimePtr(confirmed); err != nil {
		return domain.Account{}, err
	}
	if a.CreatedAt, err = decodeTime(created); err != nil {
		return domain.Account{}, err
	}
	return a, nil
}
