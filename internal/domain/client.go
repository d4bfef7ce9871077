package domain

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// DefaultPhonePrefix is prepended to phone numbers supplied without a prefix.
const DefaultPhonePrefix = "+55"

// DocumentNotInformed marks a client without a tax document.
const DocumentNotInformed = "Não informado"

// Client is a contact/lead record owned by exactly one agency.
type Client struct {
	ID        uuid.UUID    `json:"id"`
	AgencyID  uuid.UUID    `json:"agencyId"`
	Name      string       `json:"nome"`
	Email     string       `json:"email"`
	Phone     string       `json:"telefone"`
	Company   string       `json:"empresa"`
	Address   string       `json:"endereco"`
	Status    ClientStatus `json:"status"`
	Notes     []string     `json:"anotacoes"`
	Document  string       `json:"documento"`
	CreatedAt time.Time    `json:"dataCriacao"`
}

// ClientStatus is the lifecycle stage of a client.
type ClientStatus string

const (
	ClientStatusProspective ClientStatus = "Potencial"
	ClientStatusNegotiating ClientStatus = "Em negociação"
	ClientStatusClosed      ClientStatus = "Fechado"
	ClientStatusLost        ClientStatus = "Perdido"
)

// ClientStatuses lists every status in display order.
var ClientStatuses = []ClientStatus{
	ClientStatusProspective,
	ClientStatusNegotiating,
	ClientStatusClosed,
	ClientStatusLost,
}

func (s ClientStatus) String() string { return string(s) }

func (s ClientStatus) IsValid() bool {
	switch s {
	case ClientStatusProspective, ClientStatusNegotiating, ClientStatusClosed, ClientStatusLost:
		return true
	}
	return false
}

// ClientPatch carries the fields a bulk edit writes. Nil fields are left
// untouched; Notes are appended to the existing notes, skipping duplicates.
type ClientPatch struct {
	Status  *ClientStatus `json:"status,omitempty"`
	Company *string       `json:"empresa,omitempty"`
	Address *string       `json:"endereco,omitempty"`
	Notes   []string      `json:"anotacoes,omitempty"`
}

// IsEmpty reports whether the patch writes nothing.
func (p ClientPatch) IsEmpty() bool {
	return p.Status == nil && p.Company == nil && p.Address == nil && len(p.Notes) == 0
}

// Validate checks the patch before any write is dispatched.
func (p ClientPatch) Validate() error {
	if p.IsEmpty() {
		return NewValidationError("patch", "at least one field must be marked for update")
	}

	var errs []FieldError
	if p.Status != nil && !p.Status.IsValid() {
		errs = append(errs, FieldError{Field: "status", Message: "unknown status"})
	}
	for _, n := range p.Notes {
		if strings.TrimSpace(n) == "" {
			errs = append(errs, FieldError{Field: "anotacoes", Message: "note must not be blank"})
			break
		}
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// ComposePhone joins a dialing prefix and a local number. An empty prefix
// falls back to DefaultPhonePrefix; an empty number yields an empty phone.
func ComposePhone(prefix, number string) string {
	number = strings.TrimSpace(number)
	if number == "" {
		return ""
	}
	if strings.HasPrefix(number, "+") {
		return number
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = DefaultPhonePrefix
	}
	return prefix + number
}

// DocumentKind selects the Brazilian tax document layout.
type DocumentKind string

const (
	DocumentKindCPF  DocumentKind = "cpf"
	DocumentKindCNPJ DocumentKind = "cnpj"
)

func (k DocumentKind) IsValid() bool {
	return k == DocumentKindCPF || k == DocumentKindCNPJ
}

// FormatDocument masks the digits of value as a CPF (000.000.000-00) or a
// CNPJ (00.000.000/0000-00). Non-digits are dropped and excess digits are
// truncated; partial input is masked as far as it goes.
func FormatDocument(value string, kind DocumentKind) string {
	if strings.TrimSpace(value) == DocumentNotInformed {
		return DocumentNotInformed
	}

	digits := make([]rune, 0, 14)
	for _, r := range value {
		if unicode.IsDigit(r) {
			digits = append(digits, r)
		}
	}

	var seps map[int]rune
	maxLen := 11
	switch kind {
	case DocumentKindCNPJ:
		maxLen = 14
		seps = map[int]rune{2: '.', 5: '.', 8: '/', 12: '-'}
	default:
		seps = map[int]rune{3: '.', 6: '.', 9: '-'}
	}
	if len(digits) > maxLen {
		digits = digits[:maxLen]
	}

	var b strings.Builder
	for i, r := range digits {
		if sep, ok := seps[i]; ok {
			b.WriteRune(sep)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// MergeNotes appends additions to existing, skipping values already present.
func MergeNotes(existing, additions []string) []string {
	seen := make(map[string]struct{}, len(existing)+len(additions))
	out := make([]string, 0, len(existing)+len(additions))
	for _, n := range existing {
		seen[n] = struct{}{}
		out = append(out, n)
	}
	for _, n := range additions {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// StatusCount is the number of an agency's clients in one status.
type StatusCount struct {
	Status ClientStatus `json:"status"`
	Count  int          `json:"count"`
}
