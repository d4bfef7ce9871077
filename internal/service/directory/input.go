package directory

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/agencydesk-backend/internal/domain"
)

const (
	maxBulkIDs   = 500
	maxNameLen   = 200
	maxNoteLen   = 2000
	maxFieldLen  = 500
	maxExportIDs = 5000
)

// ListInput holds parameters for one page of the client list.
type ListInput struct {
	Criteria domain.SearchCriteria
	Cursor   string
}

// CreateClientInput holds the fields of a new client.
type CreateClientInput struct {
	Name         string              `json:"nome"`
	Email        string              `json:"email"`
	PhonePrefix  string              `json:"prefixo"`
	Phone        string              `json:"telefone"`
	Company      string              `json:"empresa"`
	Address      string              `json:"endereco"`
	Status       domain.ClientStatus `json:"status"`
	Document     string              `json:"documento"`
	DocumentKind domain.DocumentKind `json:"tipoDocumento"`
	NoDocument   bool                `json:"semDocumento"`
	InitialNote  string              `json:"anotacao"`
}

func (i *CreateClientInput) normalize() {
	i.Name = strings.TrimSpace(i.Name)
	i.Email = strings.TrimSpace(i.Email)
	i.Company = strings.TrimSpace(i.Company)
	i.Address = strings.TrimSpace(i.Address)
	i.Document = strings.TrimSpace(i.Document)
	i.InitialNote = strings.TrimSpace(i.InitialNote)
	if i.Status == "" {
		i.Status = domain.ClientStatusProspective
	}
	if i.DocumentKind == "" {
		i.DocumentKind = domain.DocumentKindCPF
	}
}

// Validate validates the create input.
func (i CreateClientInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateClientFields(i.Name, i.Email, i.Status)...)
	if !i.DocumentKind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "tipoDocumento", Message: "must be cpf or cnpj"})
	}
	if len(i.InitialNote) > maxNoteLen {
		errs = append(errs, domain.FieldError{Field: "anotacao", Message: "too long"})
	}
	errs = append(errs, validateLengths(map[string]string{
		"empresa":  i.Company,
		"endereco": i.Address,
		"telefone": i.Phone,
	})...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateClientInput replaces the editable fields of a client.
type UpdateClientInput struct {
	ID       uuid.UUID           `json:"-"`
	Name     string              `json:"nome"`
	Email    string              `json:"email"`
	Phone    string              `json:"telefone"`
	Company  string              `json:"empresa"`
	Address  string              `json:"endereco"`
	Status   domain.ClientStatus `json:"status"`
	Document string              `json:"documento"`
	Notes    []string            `json:"anotacoes"`
}

func (i *UpdateClientInput) normalize() {
	i.Name = strings.TrimSpace(i.Name)
	i.Email = strings.TrimSpace(i.Email)
	i.Phone = strings.TrimSpace(i.Phone)
	i.Company = strings.TrimSpace(i.Company)
	i.Address = strings.TrimSpace(i.Address)
	i.Document = strings.TrimSpace(i.Document)
}

// Validate validates the update input.
func (i UpdateClientInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	errs = append(errs, validateClientFields(i.Name, i.Email, i.Status)...)
	errs = append(errs, validateLengths(map[string]string{
		"empresa":   i.Company,
		"endereco":  i.Address,
		"telefone":  i.Phone,
		"documento": i.Document,
	})...)
	for _, n := range i.Notes {
		if len(n) > maxNoteLen {
			errs = append(errs, domain.FieldError{Field: "anotacoes", Message: "note too long"})
			break
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddNoteInput appends one note to a client.
type AddNoteInput struct {
	ID   uuid.UUID `json:"-"`
	Note string    `json:"anotacao"`
}

// Validate validates the note input.
func (i AddNoteInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	switch n := strings.TrimSpace(i.Note); {
	case n == "":
		errs = append(errs, domain.FieldError{Field: "anotacao", Message: "required"})
	case len(n) > maxNoteLen:
		errs = append(errs, domain.FieldError{Field: "anotacao", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// BulkUpdateInput applies one patch to a snapshot of selected clients.
type BulkUpdateInput struct {
	IDs   []uuid.UUID        `json:"ids"`
	Patch domain.ClientPatch `json:"patch"`
}

// Validate validates the bulk update input. The patch is checked before
// any write is dispatched.
func (i BulkUpdateInput) Validate() error {
	if err := validateIDs(i.IDs, maxBulkIDs); err != nil {
		return err
	}
	return i.Patch.Validate()
}

// BulkDeleteInput deletes a snapshot of selected clients. Confirmed must
// be set by an explicit human confirmation.
type BulkDeleteInput struct {
	IDs       []uuid.UUID `json:"ids"`
	Confirmed bool        `json:"confirmed"`
}

// Validate validates the bulk delete input.
func (i BulkDeleteInput) Validate() error {
	if err := validateIDs(i.IDs, maxBulkIDs); err != nil {
		return err
	}
	if !i.Confirmed {
		return fmt.Errorf("delete %d clients: %w", len(i.IDs), domain.ErrConfirmationRequired)
	}
	return nil
}

// ExportInput selects the clients to export, in order.
type ExportInput struct {
	IDs     []uuid.UUID `json:"ids"`
	Archive bool        `json:"-"`
}

// Validate validates the export input. An empty selection is allowed and
// yields a header-only file.
func (i ExportInput) Validate() error {
	if len(i.IDs) > maxExportIDs {
		return domain.NewValidationError("ids", fmt.Sprintf("at most %d clients per export", maxExportIDs))
	}
	for _, id := range i.IDs {
		if id == uuid.Nil {
			return domain.NewValidationError("ids", "must not contain empty ids")
		}
	}
	return nil
}

func validateClientFields(name, email string, status domain.ClientStatus) []domain.FieldError {
	var errs []domain.FieldError

	if name == "" {
		errs = append(errs, domain.FieldError{Field: "nome", Message: "required"})
	} else if len(name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "nome", Message: "too long"})
	}
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email format"})
		}
	}
	if !status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	return errs
}

func validateLengths(fields map[string]string) []domain.FieldError {
	var errs []domain.FieldError
	for _, name := range []string{"empresa", "endereco", "telefone", "documento"} {
		if v, ok := fields[name]; ok && len(v) > maxFieldLen {
			errs = append(errs, domain.FieldError{Field: name, Message: "too long"})
		}
	}
	return errs
}

func validateIDs(ids []uuid.UUID, max int) error {
	switch {
	case len(ids) == 0:
		return domain.NewValidationError("ids", "select at least one client")
	case len(ids) > max:
		return domain.NewValidationError("ids", fmt.Sprintf("at most %d clients per operation", max))
	}
	for _, id := range ids {
		if id == uuid.Nil {
			return domain.NewValidationError("ids", "must not contain empty ids")
		}
	}
	return nil
}

// dedupe returns ids without repeats, keeping first-seen order.
func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
