package agency

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/agencydesk-backend/internal/domain"
)

// Profile returns the caller's account. Permission-denied reads are retried
// with a fixed delay up to the configured retry count.
// A missing account means the token outlived it and is reported as
// ErrUnauthorized.
func (s *Service) Profile(ctx context.Context, identity domain.Identity) (domain.Account, error) {
	if err := identity.RequireAgency(); err != nil {
		return domain.Account{}, err
	}

	for attempt := 0; ; attempt++ {
		account, err := s.accounts.GetByID(ctx, identity.AgencyID)
		switch {
		case err == nil:
			return account, nil
		case errors.Is(err, domain.ErrNotFound):
			return domain.Account{}, fmt.Errorf("agency.Profile: %w", domain.ErrUnauthorized)
		case !errors.Is(err, domain.ErrForbidden) || attempt >= s.retries:
			return domain.Account{}, fmt.Errorf("agency.Profile: %w", err)
		}

		s.log.WarnContext(ctx, "profile read denied, retrying",
			slog.String("agency_id", identity.AgencyID.String()),
			slog.Int("attempt", attempt+1))

		if err := sleep(ctx, s.delay); err != nil {
			return domain.Account{}, fmt.Errorf("agency.Profile: %w", err)
		}
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
