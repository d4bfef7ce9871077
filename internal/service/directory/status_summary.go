package directory

import (
	"context"
	"fmt"

	"github.com/heartmarshall/agencydesk-backend/internal/domain"
)

// StatusSummary returns the number of clients per status, every status
// included, in display order.
func (s *Service) StatusSummary(ctx context.Context, identity domain.Identity) ([]domain.StatusCount, error) {
	if err := identity.RequireAgency(); err != nil {
		return nil, err
	}

	counts, err := s.clients.CountByStatus(ctx, identity.AgencyID)
	if err != nil {
		return nil, fmt.Errorf("directory.StatusSummary: %w", err)
	}

	byStatus := make(map[domain.ClientStatus]int, len(counts))
	for _, c := range counts {
		byStatus[c.Status] = c.Count
	}

	out := make([]domain.StatusCount, len(domain.ClientStatuses))
	for i, st := range domain.ClientStatuses {
		out[i] = domain.StatusCount{Status: st, Count: byStatus[st]}
	}
	return out, nil
}
