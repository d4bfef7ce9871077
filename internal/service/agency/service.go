// Package agency serves the signed-in agency's own profile.
package agency

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/agencydesk-backend/internal/config"
	"github.com/heartmarshall/agencydesk-backend/internal/domain"
)

type accountRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Account, error)
}

// Service implements agency profile reads.
type Service struct {
	log      *slog.Logger
	accounts accountRepo
	retries  int
	delay    time.Duration
}

// NewService creates a new agency service.
func NewService(logger *slog.Logger, accounts accountRepo, cfg config.DirectoryConfig) *Service {
	return &Service{
		log:      logger.With("service", "agency"),
		accounts: accounts,
		retries:  cfg.ProfileRetries,
		delay:    cfg.ProfileRetryDelay,
	}
}
