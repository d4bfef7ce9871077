package directory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/agencydesk-backend/internal/domain"
)

// DeleteClient removes a client and records its name in a "client deleted"
// activity.
func (s *Service) DeleteClient(ctx context.Context, identity domain.Identity, id uuid.UUID) error {
	if err := identity.RequireAgency(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		client, err := s.clients.GetByID(txCtx, identity.AgencyID, id)
		if err != nil {
			return fmt.Errorf("get client: %w", err)
		}
		if err := s.clients.Delete(txCtx, identity.AgencyID, id); err != nil {
			return fmt.Errorf("delete client: %w", err)
		}
		return s.logActivity(txCtx, identity.AgencyID, domain.ActivityClientDeleted, &client.Name)
	})
	if err != nil {
		return fmt.Errorf("directory.DeleteClient: %w", err)
	}

	s.log.InfoContext(ctx, "client deleted",
		slog.String("agency_id", identity.AgencyID.String()),
		slog.String("client_id", id.String()))

	return nil
}
