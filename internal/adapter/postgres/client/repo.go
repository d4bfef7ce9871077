// Package client implements the Client repository using PostgreSQL.
// Every statement is scoped by agency_id so one agency can never read or
// write another agency's clients.
package client

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

const table = "clients"

// prefixSentinel is appended to a prefix to form the inclusive upper bound of
// a range scan. Under COLLATE "C" it sorts after every BMP letter.
const prefixSentinel = "\uf8ff"

var columns = []string{
	"id", "agency_id", "name", "email", "phone", "company",
	"address", "status", "notes", "document", "created_at",
}

// Repo provides client persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new client repository. db is normally a *pgxpool.Pool.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        uuid.UUID `db:"id"`
	AgencyID  uuid.UUID `db:"agency_id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Phone     string    `db:"phone"`
	Company   string    `db:"company"`
	Address   string    `db:"address"`
	Status    string    `db:"status"`
	Notes     []string  `db:"notes"`
	Document  string    `db:"document"`
	CreatedAt time.Time `db:"created_at"`
}

func (r row) toDomain() domain.Client {
	notes := r.Notes
	if notes == nil {
		notes = []string{}
	}
	return domain.Client{
		ID:        r.ID,
		AgencyID:  r.AgencyID,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Company:   r.Company,
		Address:   r.Address,
		Status:    domain.ClientStatus(r.Status),
		Notes:     notes,
		Document:  r.Document,
		CreatedAt: r.CreatedAt,
	}
}

func toDomainList(rows []row) []domain.Client {
	out := make([]domain.Client, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}
	return out
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// FindPage returns up to limit clients of the agency matching criteria,
// newest first. A non-nil cursor resumes strictly after the record it names.
func (r *Repo) FindPage(ctx context.Context, agencyID uuid.UUID, criteria domain.SearchCriteria, cursor *domain.Cursor, limit int) ([]domain.Client, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"agency_id": agencyID})

	query = applyCriteria(query, criteria)

	if cursor != nil {
		query = query.Where(sq.Expr("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID))
	}

	query = query.
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build client page query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "client page", agencyID)
	}
	return toDomainList(rows), nil
}

func applyCriteria(query sq.SelectBuilder, c domain.SearchCriteria) sq.SelectBuilder {
	if c.Name != "" {
		query = query.Where(prefixRange("name", c.Name))
	}
	if c.Company != "" {
		query = query.Where(prefixRange("company", c.Company))
	}
	if c.Email != "" {
		query = query.Where(sq.Eq{"email": c.Email})
	}
	if c.Phone != "" {
		query = query.Where(sq.Eq{"phone": c.Phone})
	}
	if c.Document != "" {
		query = query.Where(sq.Eq{"document": c.Document})
	}
	return query
}

// prefixRange emulates a prefix match as col >= v AND col <= v+sentinel.
func prefixRange(col, v string) sq.Sqlizer {
	return sq.And{
		sq.Expr(col+` COLLATE "C" >= ?`, v),
		sq.Expr(col+` COLLATE "C" <= ?`, v+prefixSentinel),
	}
}

// GetByID returns a single client of the agency.
func (r *Repo) GetByID(ctx context.Context, agencyID, id uuid.UUID) (domain.Client, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id, "agency_id": agencyID}).
		ToSql()
	if err != nil {
		return domain.Client{}, fmt.Errorf("build client query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		return domain.Client{}, postgres.MapError(err, "client", id)
	}
	return rw.toDomain(), nil
}

// GetByIDs returns the agency's clients among ids, in the order of ids.
// IDs that do not exist or belong to another agency are skipped.
func (r *Repo) GetByIDs(ctx context.Context, agencyID uuid.UUID, ids []uuid.UUID) ([]domain.Client, error) {
	if len(ids) == 0 {
		return []domain.Client{}, nil
	}

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"agency_id": agencyID}).
		Where("id = ANY(?)", ids).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build clients by ids query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "clients", len(ids))
	}

	byID := make(map[uuid.UUID]row, len(rows))
	for _, rw := range rows {
		byID[rw.ID] = rw
	}
	out := make([]domain.Client, 0, len(rows))
	for _, id := range ids {
		if rw, ok := byID[id]; ok {
			out = append(out, rw.toDomain())
			delete(byID, id)
		}
	}
	return out, nil
}

// CountByStatus returns the number of the agency's clients per status.
// Statuses without clients are omitted.
func (r *Repo) CountByStatus(ctx context.Context, agencyID uuid.UUID) ([]domain.StatusCount, error) {
	sql, args, err := postgres.Builder().
		Select("status", "count(*) AS count").
		From(table).
		Where(sq.Eq{"agency_id": agencyID}).
		GroupBy("status").
		OrderBy("status").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build status count query: %w", err)
	}

	var rows []struct {
		Status string `db:"status"`
		Count  int    `db:"count"`
	}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "client status count", agencyID)
	}

	out := make([]domain.StatusCount, len(rows))
	for i, rw := range rows {
		out[i] = domain.StatusCount{Status: domain.ClientStatus(rw.Status), Count: rw.Count}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a client and returns it with server-assigned fields.
func (r *Repo) Create(ctx context.Context, c domain.Client) (domain.Client, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "agency_id", "name", "email", "phone", "company", "address", "status", "notes", "document").
		Values(c.ID, c.AgencyID, c.Name, c.Email, c.Phone, c.Company, c.Address, string(c.Status), notesOrEmpty(c.Notes), c.Document).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return domain.Client{}, fmt.Errorf("build client insert: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		return domain.Client{}, postgres.MapError(err, "client", c.ID)
	}
	return rw.toDomain(), nil
}

// CreateBatch inserts clients in a single multi-row statement and returns
// the number of rows written.
func (r *Repo) CreateBatch(ctx context.Context, clients []domain.Client) (int, error) {
	if len(clients) == 0 {
		return 0, nil
	}

	insert := postgres.Builder().
		Insert(table).
		Columns("id", "agency_id", "name", "email", "phone", "company", "address", "status", "notes", "document")
	for _, c := range clients {
		insert = insert.Values(c.ID, c.AgencyID, c.Name, c.Email, c.Phone, c.Company, c.Address, string(c.Status), notesOrEmpty(c.Notes), c.Document)
	}

	sql, args, err := insert.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build client batch insert: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "client batch", len(clients))
	}
	return int(tag.RowsAffected()), nil
}

// Update replaces the editable fields of a client. AgencyID, ID and
// CreatedAt are never written.
func (r *Repo) Update(ctx context.Context, c domain.Client) (domain.Client, error) {
	sql, args, err := postgres.Builder().
		Update(table).
		SetMap(map[string]any{
			"name":     c.Name,
			"email":    c.Email,
			"phone":    c.Phone,
			"company":  c.Company,
			"address":  c.Address,
			"status":   string(c.Status),
			"notes":    notesOrEmpty(c.Notes),
			"document": c.Document,
		}).
		Where(sq.Eq{"id": c.ID, "agency_id": c.AgencyID}).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return domain.Client{}, fmt.Errorf("build client update: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		return domain.Client{}, postgres.MapError(err, "client", c.ID)
	}
	return rw.toDomain(), nil
}

// ApplyPatch writes only the fields set in patch. Notes are appended,
// skipping values the client already has.
func (r *Repo) ApplyPatch(ctx context.Context, agencyID, id uuid.UUID, patch domain.ClientPatch) error {
	update := postgres.Builder().
		Update(table).
		Where(sq.Eq{"id": id, "agency_id": agencyID})

	if patch.Status != nil {
		update = update.Set("status", string(*patch.Status))
	}
	if patch.Company != nil {
		update = update.Set("company", *patch.Company)
	}
	if patch.Address != nil {
		update = update.Set("address", *patch.Address)
	}
	if notes := domain.MergeNotes(nil, patch.Notes); len(notes) > 0 {
		update = update.Set("notes", appendNotesExpr(notes))
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return fmt.Errorf("build client patch: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "client", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("client %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// AppendNotes adds notes to a client with array-union semantics.
func (r *Repo) AppendNotes(ctx context.Context, agencyID, id uuid.UUID, notes []string) error {
	return r.ApplyPatch(ctx, agencyID, id, domain.ClientPatch{Notes: notes})
}

// appendNotesExpr keeps existing notes and appends the new ones in order,
// skipping any value already present. notes must be free of duplicates.
func appendNotesExpr(notes []string) sq.Sqlizer {
	return sq.Expr(
		`notes || COALESCE((SELECT array_agg(n ORDER BY ord) FROM unnest(?::text[]) WITH ORDINALITY AS t(n, ord) WHERE NOT (n = ANY(notes))), '{}')`,
		notes,
	)
}

// Delete removes a client of the agency.
func (r *Repo) Delete(ctx context.Context, agencyID, id uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id, "agency_id": agencyID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build client delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "client", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("client %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func notesOrEmpty(notes []string) []string {
	if notes == nil {
		return []string{}
	}
	return notes
}

func joinColumns() string {
	return strings.Join(columns, ", ")
}
