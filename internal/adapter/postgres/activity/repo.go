// Package activity implements the append-only recent-activity repository.
package activity

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/agencydesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/agencydesk-backend/internal/domain"
)

const table = "activities"

// Repo provides activity persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new activity repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID          uuid.UUID `db:"id"`
	AgencyID    uuid.UUID `db:"agency_id"`
	Description string    `db:"description"`
	Detail      *string   `db:"detail"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r row) toDomain() domain.Activity {
	return domain.Activity{
		ID:          r.ID,
		AgencyID:    r.AgencyID,
		Description: r.Description,
		Detail:      r.Detail,
		CreatedAt:   r.CreatedAt,
	}
}

// Create appends an activity entry. The server assigns created_at.
func (r *Repo) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "agency_id", "description", "detail").
		Values(a.ID, a.AgencyID, a.Description, a.Detail).
		Suffix("RETURNING id, agency_id, description, detail, created_at").
		ToSql()
	if err != nil {
		return domain.Activity{}, fmt.Errorf("build activity insert: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		return domain.Activity{}, postgres.MapError(err, "activity", a.ID)
	}
	return rw.toDomain(), nil
}

// Log appends an activity entry without returning it.
func (r *Repo) Log(ctx context.Context, a domain.Activity) error {
	_, err := r.Create(ctx, a)
	return err
}

// ListRecent returns the agency's newest entries, at most limit.
func (r *Repo) ListRecent(ctx context.Context, agencyID uuid.UUID, limit int) ([]domain.Activity, error) {
	sql, args, err := postgres.Builder().
		Select("id", "agency_id", "description", "detail", "created_at").
		From(table).
		Where(sq.Eq{"agency_id": agencyID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build recent activity query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "activity list", agencyID)
	}

	out := make([]domain.Activity, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// DeleteOlderThan removes the agency's entries created before threshold.
func (r *Repo) DeleteOlderThan(ctx context.Context, agencyID uuid.UUID, threshold time.Time) (int64, error) {
	return r.deleteWhere(ctx, sq.And{
		sq.Eq{"agency_id": agencyID},
		sq.Lt{"created_at": threshold},
	})
}

// DeleteAllOlderThan removes entries of every agency created before threshold.
func (r *Repo) DeleteAllOlderThan(ctx context.Context, threshold time.Time) (int64, error) {
	return r.deleteWhere(ctx, sq.Lt{"created_at": threshold})
}

func (r *Repo) deleteWhere(ctx context.Context, pred sq.Sqlizer) (int64, error) {
	sql, args, err := postgres.Builder().Delete(table).Where(pred).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build activity prune: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "activity prune", "")
	}
	return tag.RowsAffected(), nil
}
