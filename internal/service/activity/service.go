// Package activity serves the dashboard's recent-activity feed.
package activity

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/agencydesk-backend/internal/config"
	"github.com/heartmarshall/agencydesk-backend/internal/domain"
)

const maxRecentLimit = 50

type activityRepo interface {
	ListRecent(ctx context.Context, agencyID uuid.UUID, limit int) ([]domain.Activity, error)
	DeleteOlderThan(ctx context.Context, agencyID uuid.UUID, threshold time.Time) (int64, error)
	DeleteAllOlderThan(ctx context.Context, threshold time.Time) (int64, error)
}

// Service implements activity feed operations.
type Service struct {
	log       *slog.Logger
	repo      activityRepo
	retention time.Duration
	limit     int
	now       func() time.Time
}

// NewService creates a new activity service.
func NewService(logger *slog.Logger, repo activityRepo, cfg config.DirectoryConfig) *Service {
	return &Service{
		log:       logger.With("service", "activity"),
		repo:      repo,
		retention: cfg.ActivityRetention,
		limit:     cfg.RecentLimit,
		now:       time.Now,
	}
}

// Recent prunes the agency's entries older than the retention window and
// returns the newest ones, at most limit. A non-positive limit uses the
// configured default.
func (s *Service) Recent(ctx context.Context, identity domain.Identity, limit int) ([]domain.Activity, error) {
	if err := identity.RequireAgency(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = s.limit
	}
	if limit > maxRecentLimit {
		return nil, domain.NewValidationError("limit", fmt.Sprintf("must be at most %d", maxRecentLimit))
	}

	pruned, err := s.repo.DeleteOlderThan(ctx, identity.AgencyID, s.now().Add(-s.retention))
	if err != nil {
		return nil, fmt.Errorf("activity.Recent prune: %w", err)
	}
	if pruned > 0 {
		s.log.DebugContext(ctx, "pruned stale activity",
			slog.String("agency_id", identity.AgencyID.String()),
			slog.Int64("deleted", pruned))
	}

	entries, err := s.repo.ListRecent(ctx, identity.AgencyID, limit)
	if err != nil {
		return nil, fmt.Errorf("activity.Recent: %w", err)
	}
	return entries, nil
}

// PruneAll removes entries older than the retention window for every agency.
func (s *Service) PruneAll(ctx context.Context) (int64, error) {
	deleted, err := s.repo.DeleteAllOlderThan(ctx, s.now().Add(-s.retention))
	if err != nil {
		return 0, fmt.Errorf("activity.PruneAll: %w", err)
	}
	s.log.InfoContext(ctx, "activity pruned", slog.Int64("deleted", deleted))
	return deleted, nil
}
