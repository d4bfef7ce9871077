package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/agencydesk-backend/internal/auth"
	"github.com/heartmarshall/agencydesk-backend/internal/domain"
)

// Login authenticates an account with email + password.
// Returns ErrUnauthorized if the email is not found or the password is wrong.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Email = strings.TrimSpace(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	account, err := s.accounts.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get account: %w", err)
	}

	if !auth.CheckPassword(account.PasswordHash, input.Password) {
		return nil, domain.ErrUnauthorized
	}

	result, err := s.issueToken(account)
	if err != nil {
		return nil, fmt.Errorf("auth.Login: %w", err)
	}

	s.log.InfoContext(ctx, "account logged in",
		slog.String("account_id", account.ID.String()))

	return result, nil
}

// Logout records the sign-out. Tokens are stateless, so the caller discards
// its token and nothing is revoked server-side.
func (s *Service) Logout(ctx context.Context, identity domain.Identity) {
	s.log.InfoContext(ctx, "account logged out",
		slog.String("account_id", identity.AgencyID.String()))
}
