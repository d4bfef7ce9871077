package directory

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/agencydesk-backend/internal/adapter/storage"
	"github.com/heartmarshall/agencydesk-backend/internal/csvexport"
	"github.com/heartmarshall/agencydesk-backend/internal/domain"
)

// ExportClients renders the given clients as CSV in the order requested.
// Ids the agency does not own are left out. With Archive set the file is
// also stored in export storage and its key returned.
func (s *Service) ExportClients(ctx context.Context, identity domain.Identity, input ExportInput) (*ExportResult, error) {
	if err := identity.RequireAgency(); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var clients []domain.Client
	if ids := dedupe(input.IDs); len(ids) > 0 {
		var err error
		clients, err = s.clients.GetByIDs(ctx, identity.AgencyID, ids)
		if err != nil {
			return nil, fmt.Errorf("directory.ExportClients: %w", err)
		}
	}

	result := &ExportResult{
		Filename:    csvexport.Filename,
		ContentType: csvexport.ContentType,
		Data:        csvexport.Encode(clients),
		Count:       len(clients),
	}

	if input.Archive {
		key := storage.ExportKey(identity.AgencyID, uuid.New(), csvexport.Filename)
		if err := s.store.Upload(ctx, key, csvexport.ContentType, bytes.NewReader(result.Data)); err != nil {
			return nil, fmt.Errorf("directory.ExportClients archive: %w", err)
		}
		result.Key = key

		s.log.InfoContext(ctx, "export archived",
			slog.String("agency_id", identity.AgencyID.String()),
			slog.String("key", key),
			slog.Int("count", result.Count))
	}

	return result, nil
}

// DownloadExport opens an archived export. Keys outside the agency's
// export prefix are reported as ErrNotFound.
func (s *Service) DownloadExport(ctx context.Context, identity domain.Identity, key string) (io.ReadCloser, error) {
	if err := identity.RequireAgency(); err != nil {
		return nil, err
	}
	if !storage.OwnsKey(identity.AgencyID, key) {
		return nil, fmt.Errorf("export %q: %w", key, domain.ErrNotFound)
	}

	rc, err := s.store.Download(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("directory.DownloadExport: %w", err)
	}
	return rc, nil
}

// DeleteExport removes an archived export of the agency. Keys outside the
// agency's export prefix are reported as ErrNotFound.
func (s *Service) DeleteExport(ctx context.Context, identity domain.Identity, key string) error {
	if err := identity.RequireAgency(); err != nil {
		return err
	}
	if !storage.OwnsKey(identity.AgencyID, key) {
		return fmt.Errorf("export %q: %w", key, domain.ErrNotFound)
	}

	if err := s.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("directory.DeleteExport: %w", err)
	}

	s.log.InfoContext(ctx, "export deleted",
		slog.String("agency_id", identity.AgencyID.String()),
		slog.String("key", key))
	return nil
}
