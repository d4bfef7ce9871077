// Package account implements the Account repository using PostgreSQL.
package account

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/agencydesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/agencydesk-backend/internal/domain"
)

const table = "accounts"

var columns = []string{"id", "email", "name", "kind", "password_hash", "created_at", "updated_at"}

// Repo provides account persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new account repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	Kind         string    `db:"kind"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Account {
	return domain.Account{
		ID:           r.ID,
		Email:        r.Email,
		Name:         r.Name,
		Kind:         domain.AccountKind(r.Kind),
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// Create inserts a new account. A duplicate email yields ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, a domain.Account) (domain.Account, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "email", "name", "kind", "password_hash").
		Values(a.ID, a.Email, a.Name, string(a.Kind), a.PasswordHash).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.Account{}, fmt.Errorf("build account insert: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		return domain.Account{}, postgres.MapError(err, "account", a.Email)
	}
	return rw.toDomain(), nil
}

// GetByID returns an account by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Account, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, id)
}

// GetByEmail returns an account by email, case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	return r.getOne(ctx, sq.Expr("lower(email) = lower(?)", email), email)
}

func (r *Repo) getOne(ctx context.Context, pred sq.Sqlizer, ref any) (domain.Account, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(pred).
		ToSql()
	if err != nil {
		return domain.Account{}, fmt.Errorf("build account query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		return domain.Account{}, postgres.MapError(err, "account", ref)
	}
	return rw.toDomain(), nil
}
