package auth

import "github.com/heartmarshall/agencydesk-backend/internal/domain"

// AuthResult is returned by Register and Login.
type AuthResult struct {
	AccessToken string         `json:"accessToken"`
	Account     domain.Account `json:"account"`
}
