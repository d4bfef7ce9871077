package directory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/agencydesk-backend/internal/domain"
)

// BulkUpdate applies one patch to every selected client. The patch is
// validated before any write. Writes run one statement per client and are
// not atomic: when some fail, the rest stay updated and the result lists
// the failures alongside the returned error.
func (s *Service) BulkUpdate(ctx context.Context, identity domain.Identity, input BulkUpdateInput) (*BulkResult, error) {
	if err := identity.RequireAgency(); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ids := dedupe(input.IDs)
	patch := input.Patch

	result, err := s.fanOut(ctx, ids, func(ctx context.Context, id uuid.UUID) error {
		return s.clients.ApplyPatch(ctx, identity.AgencyID, id, patch)
	})
	if err != nil {
		s.log.WarnContext(ctx, "bulk update partially failed",
			slog.String("agency_id", identity.AgencyID.String()),
			slog.Int("succeeded", result.Succeeded),
			slog.Int("failed", len(result.Failures)))
		return result, fmt.Errorf("directory.BulkUpdate: %d of %d updates failed: %w", len(result.Failures), len(ids), err)
	}

	if err := s.logActivity(ctx, identity.AgencyID, domain.BulkUpdateDescription(result.Succeeded), nil); err != nil {
		return result, fmt.Errorf("directory.BulkUpdate log activity: %w", err)
	}

	s.log.InfoContext(ctx, "clients bulk updated",
		slog.String("agency_id", identity.AgencyID.String()),
		slog.Int("count", result.Succeeded))

	return result, nil
}
