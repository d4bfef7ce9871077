package directory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/agencydesk-backend/internal/domain"
)

// BulkDelete removes every selected client after an explicit confirmation
// and records exactly one summary activity. Deletions are not atomic: on
// failure the completed ones stay and no activity is written.
func (s *Service) BulkDelete(ctx context.Context, identity domain.Identity, input BulkDeleteInput) (*BulkResult, error) {
	if err := identity.RequireAgency(); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ids := dedupe(input.IDs)

	result, err := s.fanOut(ctx, ids, func(ctx context.Context, id uuid.UUID) error {
		return s.clients.Delete(ctx, identity.AgencyID, id)
	})
	if err != nil {
		s.log.WarnContext(ctx, "bulk delete partially failed",
			slog.String("agency_id", identity.AgencyID.String()),
			slog.Int("succeeded", result.Succeeded),
			slog.Int("failed", len(result.Failures)))
		return result, fmt.Errorf("directory.BulkDelete: %d of %d deletions failed: %w", len(result.Failures), len(ids), err)
	}

	if err := s.logActivity(ctx, identity.AgencyID, domain.BulkDeleteDescription(result.Succeeded), nil); err != nil {
		return result, fmt.Errorf("directory.BulkDelete log activity: %w", err)
	}

	s.log.InfoContext(ctx, "clients bulk deleted",
		slog.String("agency_id", identity.AgencyID.String()),
		slog.Int("count", result.Succeeded))

	return result, nil
}
