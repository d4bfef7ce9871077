package domain

import (
	"time"

	"github.com/google/uuid"
)

// AccountKind distinguishes agency tenants from client logins.
type AccountKind string

const (
	AccountKindAgency AccountKind = "agency"
	AccountKindClient AccountKind = "client"
)

func (k AccountKind) String() string { return string(k) }

func (k AccountKind) IsValid() bool {
	return k == AccountKindAgency || k == AccountKindClient
}

// Account is a registered user. Agency accounts own clients.
type Account struct {
	ID           uuid.UUID   `json:"id"`
	Email        string      `json:"email"`
	Name         string      `json:"name"`
	Kind         AccountKind `json:"userType"`
	PasswordHash string      `json:"-"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// Identity is the authenticated caller, resolved once per request.
type Identity struct {
	AgencyID uuid.UUID
	Email    string
	Kind     AccountKind
}

// RequireAgency returns ErrUnauthorized for an anonymous identity and
// ErrForbidden for anything but an agency account.
func (i Identity) RequireAgency() error {
	if i.AgencyID == uuid.Nil {
		return ErrUnauthorized
	}
	if i.Kind != AccountKindAgency {
		return ErrForbidden
	}
	return nil
}
