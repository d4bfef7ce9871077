package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/agencydesk-backend/internal/auth"
	"github.com/heartmarshall/agencydesk-backend/internal/domain"
)

// Register creates a new account with email + password authentication.
// Returns ErrAlreadyExists if the email is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Name = strings.TrimSpace(input.Name)
	if input.Kind == "" {
		input.Kind = domain.AccountKindAgency
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	// Email uniqueness is enforced by the accounts_email_key index.
	account, err := s.accounts.Create(ctx, domain.Account{
		ID:           uuid.New(),
		Email:        input.Email,
		Name:         input.Name,
		Kind:         input.Kind,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	result, err := s.issueToken(account)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "account registered",
		slog.String("account_id", account.ID.String()),
		slog.String("kind", account.Kind.String()))

	return result, nil
}
