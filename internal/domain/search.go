package domain

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultPageSize is the fixed number of clients per page.
const DefaultPageSize = 10

// SearchCriteria filters the client list. Empty fields are ignored and the
// remaining ones are AND-combined. Name and Company match by prefix; the
// others match exactly.
type SearchCriteria struct {
	Name     string `json:"nome,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"telefone,omitempty"`
	Company  string `json:"empresa,omitempty"`
	Document string `json:"documento,omitempty"`
}

// Normalize returns a copy with surrounding whitespace trimmed.
func (c SearchCriteria) Normalize() SearchCriteria {
	return SearchCriteria{
		Name:     strings.TrimSpace(c.Name),
		Email:    strings.TrimSpace(c.Email),
		Phone:    strings.TrimSpace(c.Phone),
		Company:  strings.TrimSpace(c.Company),
		Document: strings.TrimSpace(c.Document),
	}
}

// IsEmpty reports whether no filter is set.
func (c SearchCriteria) IsEmpty() bool {
	return c == SearchCriteria{}
}

// Validate rejects combinations the client index cannot serve. Only one
// prefix field may be active at a time.
func (c SearchCriteria) Validate() error {
	if c.Name != "" && c.Company != "" {
		return fmt.Errorf("%w: nome and empresa prefix filters cannot be combined; search by one of them", ErrFailedPrecondition)
	}
	return nil
}

// Cursor points at the last client of a fetched page.
type Cursor struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// CursorFor builds the cursor that resumes after c.
func CursorFor(c Client) Cursor {
	return Cursor{CreatedAt: c.CreatedAt, ID: c.ID}
}

// Encode returns the opaque token form of the cursor.
func (c Cursor) Encode() string {
	raw := c.CreatedAt.UTC().Format(time.RFC3339Nano) + "|" + c.ID.String()
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// DecodeCursor parses a token produced by Cursor.Encode. An empty token
// yields a nil cursor (first page).
func DecodeCursor(token string) (*Cursor, error) {
	if token == "" {
		return nil, nil
	}

	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, NewValidationError("cursor", "malformed cursor")
	}
	ts, id, ok := strings.Cut(string(raw), "|")
	if !ok {
		return nil, NewValidationError("cursor", "malformed cursor")
	}
	createdAt, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return nil, NewValidationError("cursor", "malformed cursor timestamp")
	}
	parsedID, err := uuid.Parse(id)
	if err != nil {
		return nil, NewValidationError("cursor", "malformed cursor id")
	}
	return &Cursor{CreatedAt: createdAt, ID: parsedID}, nil
}

// Page is one fetched slice of the client list.
type Page struct {
	Clients    []Client `json:"clients"`
	NextCursor string   `json:"nextCursor,omitempty"`
}
