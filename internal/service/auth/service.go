package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/agencydesk-backend/internal/auth"
	"github.com/heartmarshall/agencydesk-backend/internal/config"
	"github.com/heartmarshall/agencydesk-backend/internal/domain"
)

// accountRepo defines the account repository interface needed by auth service.
type accountRepo interface {
	GetByEmail(ctx context.Context, email string) (domain.Account, error)
	Create(ctx context.Context, a domain.Account) (domain.Account, error)
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(accountID uuid.UUID, email, kind string) (string, error)
	ValidateAccessToken(token string) (auth.Claims, error)
}

// Service implements auth operations.
type Service struct {
	log      *slog.Logger
	accounts accountRepo
	jwt      jwtManager
	cfg      config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, accounts accountRepo, jwt jwtManager, cfg config.AuthConfig) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		accounts: accounts,
		jwt:      jwt,
		cfg:      cfg,
	}
}

// issueToken signs an access token for the account.
func (s *Service) issueToken(account domain.Account) (*AuthResult, error) {
	token, err := s.jwt.GenerateAccessToken(account.ID, account.Email, account.Kind.String())
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	return &AuthResult{AccessToken: token, Account: account}, nil
}

// ValidateToken resolves a bearer token into the caller identity.
// Any failure is reported as ErrUnauthorized.
func (s *Service) ValidateToken(_ context.Context, token string) (domain.Identity, error) {
	claims, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}

	kind := domain.AccountKind(claims.Kind)
	if !kind.IsValid() {
		return domain.Identity{}, fmt.Errorf("%w: unknown account kind %q", domain.ErrUnauthorized, claims.Kind)
	}

	return domain.Identity{AgencyID: claims.AccountID, Email: claims.Email, Kind: kind}, nil
}
