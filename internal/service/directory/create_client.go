package directory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/agencydesk-backend/internal/domain"
)

// CreateClient adds a client owned by the calling agency and records a
// "new client" activity in the same transaction.
func (s *Service) CreateClient(ctx context.Context, identity domain.Identity, input CreateClientInput) (domain.Client, error) {
	if err := identity.RequireAgency(); err != nil {
		return domain.Client{}, err
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return domain.Client{}, err
	}

	document := domain.DocumentNotInformed
	if !input.NoDocument && input.Document != "" {
		document = domain.FormatDocument(input.Document, input.DocumentKind)
	}

	var notes []string
	if input.InitialNote != "" {
		notes = []string{input.InitialNote}
	}

	client := domain.Client{
		ID:       uuid.New(),
		AgencyID: identity.AgencyID,
		Name:     input.Name,
		Email:    input.Email,
		Phone:    domain.ComposePhone(input.PhonePrefix, input.Phone),
		Company:  input.Company,
		Address:  input.Address,
		Status:   input.Status,
		Notes:    notes,
		Document: document,
	}

	var created domain.Client
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.clients.Create(txCtx, client)
		if err != nil {
			return fmt.Errorf("create client: %w", err)
		}
		return s.logActivity(txCtx, identity.AgencyID, domain.ActivityClientCreated, &created.Name)
	})
	if err != nil {
		return domain.Client{}, fmt.Errorf("directory.CreateClient: %w", err)
	}

	s.log.InfoContext(ctx, "client created",
		slog.String("agency_id", identity.AgencyID.String()),
		slog.String("client_id", created.ID.String()))

	return created, nil
}
