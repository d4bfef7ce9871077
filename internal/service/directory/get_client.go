package directory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/agencydesk-backend/internal/domain"
)

// GetClient returns one of the agency's clients. Clients of other agencies
// are reported as ErrNotFound.
func (s *Service) GetClient(ctx context.Context, identity domain.Identity, id uuid.UUID) (domain.Client, error) {
	if err := identity.RequireAgency(); err != nil {
		return domain.Client{}, err
	}

	client, err := s.clients.GetByID(ctx, identity.AgencyID, id)
	if err != nil {
		return domain.Client{}, fmt.Errorf("directory.GetClient: %w", err)
	}
	return client, nil
}
