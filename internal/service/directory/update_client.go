package directory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/agencydesk-backend/internal/domain"
)

// UpdateClient replaces the editable fields of a client, notes included.
func (s *Service) UpdateClient(ctx context.Context, identity domain.Identity, input UpdateClientInput) (domain.Client, error) {
	if err := identity.RequireAgency(); err != nil {
		return domain.Client{}, err
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return domain.Client{}, err
	}

	var updated domain.Client
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = s.clients.Update(txCtx, domain.Client{
			ID:       input.ID,
			AgencyID: identity.AgencyID,
			Name:     input.Name,
			Email:    input.Email,
			Phone:    input.Phone,
			Company:  input.Company,
			Address:  input.Address,
			Status:   input.Status,
			Notes:    input.Notes,
			Document: input.Document,
		})
		if err != nil {
			return fmt.Errorf("update client: %w", err)
		}
		return s.logActivity(txCtx, identity.AgencyID, domain.ActivityClientUpdated, &updated.Name)
	})
	if err != nil {
		return domain.Client{}, fmt.Errorf("directory.UpdateClient: %w", err)
	}

	s.log.InfoContext(ctx, "client updated",
		slog.String("agency_id", identity.AgencyID.String()),
		slog.String("client_id", updated.ID.String()))

	return updated, nil
}
