// Package directory implements the agency's client directory: paged search,
// client CRUD, bulk edits, CSV import and export.
package directory

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/agencydesk-backend/internal/config"
	"github.com/heartmarshall/agencydesk-backend/internal/domain"
)

// clientRepo defines the client persistence needed by the directory service.
type clientRepo interface {
	FindPage(ctx context.Context, agencyID uuid.UUID, criteria domain.SearchCriteria, cursor *domain.Cursor, limit int) ([]domain.Client, error)
	GetByID(ctx context.Context, agencyID, id uuid.UUID) (domain.Client, error)
	GetByIDs(ctx context.Context, agencyID uuid.UUID, ids []uuid.UUID) ([]domain.Client, error)
	CountByStatus(ctx context.Context, agencyID uuid.UUID) ([]domain.StatusCount, error)
	Create(ctx context.Context, c domain.Client) (domain.Client, error)
	CreateBatch(ctx context.Context, clients []domain.Client) (int, error)
	Update(ctx context.Context, c domain.Client) (domain.Client, error)
	ApplyPatch(ctx context.Context, agencyID, id uuid.UUID, patch domain.ClientPatch) error
	AppendNotes(ctx context.Context, agencyID, id uuid.UUID, notes []string) error
	Delete(ctx context.Context, agencyID, id uuid.UUID) error
}

// activityLog appends dashboard activity entries.
type activityLog interface {
	Log(ctx context.Context, a domain.Activity) error
}

// txManager defines the transaction manager interface needed by the directory service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// exportStore archives CSV exports.
type exportStore interface {
	Upload(ctx context.Context, key, contentType string, data io.Reader) error
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

// Service implements client directory operations.
type Service struct {
	log        *slog.Logger
	clients    clientRepo
	activities activityLog
	tx         txManager
	store      exportStore
	cfg        config.DirectoryConfig
}

// NewService creates a new directory service.
func NewService(
	logger *slog.Logger,
	clients clientRepo,
	activities activityLog,
	tx txManager,
	store exportStore,
	cfg config.DirectoryConfig,
) *Service {
	return &Service{
		log:        logger.With("service", "directory"),
		clients:    clients,
		activities: activities,
		tx:         tx,
		store:      store,
		cfg:        cfg,
	}
}

// logActivity appends an activity entry for the agency.
func (s *Service) logActivity(ctx context.Context, agencyID uuid.UUID, description string, detail *string) error {
	return s.activities.Log(ctx, domain.Activity{
		ID:          uuid.New(),
		AgencyID:    agencyID,
		Description: description,
		Detail:      detail,
	})
}

// pageSize returns the configured page size, falling back to the default.
func (s *Service) pageSize() int {
	if s.cfg.PageSize <= 0 {
		return domain.DefaultPageSize
	}
	return s.cfg.PageSize
}
