package directory

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/agencydesk-backend/internal/domain"
)

// AddNote appends a note to a client. A note the client already has is
// not duplicated. Returns the client as stored after the append.
func (s *Service) AddNote(ctx context.Context, identity domain.Identity, input AddNoteInput) (domain.Client, error) {
	if err := identity.RequireAgency(); err != nil {
		return domain.Client{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.Client{}, err
	}

	note := strings.TrimSpace(input.Note)
	if err := s.clients.AppendNotes(ctx, identity.AgencyID, input.ID, []string{note}); err != nil {
		return domain.Client{}, fmt.Errorf("directory.AddNote: %w", err)
	}

	client, err := s.clients.GetByID(ctx, identity.AgencyID, input.ID)
	if err != nil {
		return domain.Client{}, fmt.Errorf("directory.AddNote reload: %w", err)
	}
	return client, nil
}
