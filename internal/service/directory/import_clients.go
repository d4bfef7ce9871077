package directory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/agencydesk-backend/internal/csvexport"
	"github.com/heartmarshall/agencydesk-backend/internal/domain"
)

// pendingRow is a decoded row waiting for its batch to be written.
type pendingRow struct {
	line   int
	client domain.Client
}

// ImportClients reads a CSV file with a header row and adds its rows as
// clients of the agency. Rows are written in batches, each batch in its own
// transaction; a failed batch is reported row by row and the import goes
// on. One activity summarizing the import is recorded.
func (s *Service) ImportClients(ctx context.Context, identity domain.Identity, r io.Reader) (*ImportResult, error) {
	if err := identity.RequireAgency(); err != nil {
		return nil, err
	}

	reader, err := csvexport.NewReader(r)
	if err != nil {
		return nil, err
	}

	batchSize := s.cfg.ImportBatchSize
	if batchSize <= 0 {
		batchSize = 100
	}

	result := &ImportResult{}
	batch := make([]pendingRow, 0, batchSize)

	for {
		rec, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return result, fmt.Errorf("directory.ImportClients read: %w", err)
		}
		if rec.Err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, ImportError{Line: rec.Line, Name: rec.Client.Name, Reason: rec.Err.Error()})
			continue
		}

		batch = append(batch, pendingRow{line: rec.Line, client: importedClient(identity.AgencyID, rec.Client)})
		if len(batch) == batchSize {
			s.writeBatch(ctx, batch, result)
			batch = batch[:0]
		}
	}
	if len(batch) > 0 {
		s.writeBatch(ctx, batch, result)
	}

	if result.Imported > 0 {
		if err := s.logActivity(ctx, identity.AgencyID, domain.ImportDescription(result.Imported), nil); err != nil {
			return result, fmt.Errorf("directory.ImportClients log activity: %w", err)
		}
	}

	s.log.InfoContext(ctx, "clients imported",
		slog.String("agency_id", identity.AgencyID.String()),
		slog.Int("imported", result.Imported),
		slog.Int("skipped", result.Skipped))

	return result, nil
}

// writeBatch inserts one batch in a transaction and folds the outcome into result.
func (s *Service) writeBatch(ctx context.Context, batch []pendingRow, result *ImportResult) {
	clients := make([]domain.Client, len(batch))
	for i, p := range batch {
		clients[i] = p.client
	}

	var written int
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		written, err = s.clients.CreateBatch(txCtx, clients)
		return err
	})
	if txErr != nil {
		s.log.WarnContext(ctx, "import batch failed",
			slog.Int("first_line", batch[0].line),
			slog.Int("rows", len(batch)),
			slog.String("error", txErr.Error()))
		for _, p := range batch {
			result.Errors = append(result.Errors, ImportError{
				Line:   p.line,
				Name:   p.client.Name,
				Reason: "batch transaction failed: " + txErr.Error(),
			})
		}
		result.Skipped += len(batch)
		return
	}
	result.Imported += written
}

// importedClient fills the defaults a manually created client would get.
func importedClient(agencyID uuid.UUID, c domain.Client) domain.Client {
	c.ID = uuid.New()
	c.AgencyID = agencyID
	c.Phone = domain.ComposePhone("", c.Phone)
	if c.Status == "" {
		c.Status = domain.ClientStatusProspective
	}
	if c.Document == "" {
		c.Document = domain.DocumentNotInformed
	}
	return c
}
