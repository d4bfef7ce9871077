package directory

import (
	"context"
	"fmt"

	"github.com/heartmarshall/agencydesk-backend/internal/domain"
)

// ListClients returns one page of the agency's clients, newest first.
// NextCursor is set only when the page is full; a short page is the last.
func (s *Service) ListClients(ctx context.Context, identity domain.Identity, input ListInput) (*domain.Page, error) {
	if err := identity.RequireAgency(); err != nil {
		return nil, err
	}

	criteria := input.Criteria.Normalize()
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	cursor, err := domain.DecodeCursor(input.Cursor)
	if err != nil {
		return nil, err
	}

	limit := s.pageSize()
	clients, err := s.clients.FindPage(ctx, identity.AgencyID, criteria, cursor, limit)
	if err != nil {
		return nil, fmt.Errorf("directory.ListClients: %w", err)
	}

	page := &domain.Page{Clients: clients}
	if len(clients) == limit {
		page.NextCursor = domain.CursorFor(clients[len(clients)-1]).Encode()
	}
	return page, nil
}
