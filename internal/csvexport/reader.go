package csvexport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/heartmarshall/agencydesk-backend/internal/domain"
)

// Record is one parsed data row of an import file.
type Record struct {
	Line   int
	Client domain.Client
	Err    error
}

// headerAliases maps accepted column titles (lowercased) to client fields.
// Both the export titles and the JSON keys are accepted.
var headerAliases = map[string]string{
	"nome":      "name",
	"name":      "name",
	"email":     "email",
	"e-mail":    "email",
	"telefone":  "phone",
	"phone":     "phone",
	"empresa":   "company",
	"company":   "company",
	"endereço":  "address",
	"endereco":  "address",
	"address":   "address",
	"status":    "status",
	"documento": "document",
	"document":  "document",
	"anotacao":  "note",
	"anotação":  "note",
}

// Reader decodes client rows from an import file.
type Reader struct {
	r       *csv.Reader
	columns []string
}

// NewReader reads and maps the header row. Unknown columns are ignored; a
// header without a name column is rejected.
func NewReader(r io.Reader) (*Reader, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, domain.NewValidationError("file", "empty CSV file")
		}
		return nil, domain.NewValidationError("file", fmt.Sprintf("unreadable header: %v", err))
	}

	columns := make([]string, len(header))
	hasName := false
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		columns[i] = headerAliases[key]
		if columns[i] == "name" {
			hasName = true
		}
	}
	if !hasName {
		return nil, domain.NewValidationError("file", "header must contain a Nome column")
	}

	return &Reader{r: cr, columns: columns}, nil
}

// Next returns the next non-blank record, or io.EOF when the file is done.
// A malformed row is returned as a Record with Err set so callers can skip
// it and keep going.
func (rd *Reader) Next() (Record, error) {
	for {
		values, err := rd.r.Read()
		if errors.Is(err, io.EOF) {
			return Record{}, io.EOF
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return Record{Line: pe.Line, Err: err}, nil
			}
			return Record{}, err
		}
		if blank(values) {
			continue
		}

		line, _ := rd.r.FieldPos(0)
		return rd.decode(line, values), nil
	}
}

func (rd *Reader) decode(line int, values []string) Record {
	var (
		c    domain.Client
		note string
	)
	for i, v := range values {
		if i >= len(rd.columns) {
			break
		}
		v = strings.TrimSpace(v)
		switch rd.columns[i] {
		case "name":
			c.Name = v
		case "email":
			c.Email = v
		case "phone":
			c.Phone = v
		case "company":
			c.Company = v
		case "address":
			c.Address = v
		case "status":
			c.Status = domain.ClientStatus(v)
		case "document":
			c.Document = v
		case "note":
			note = v
		}
	}
	if note != "" {
		c.Notes = []string{note}
	}

	rec := Record{Line: line, Client: c}
	switch {
	case c.Name == "":
		rec.Err = domain.NewValidationError("nome", "required")
	case c.Status != "" && !c.Status.IsValid():
		rec.Err = domain.NewValidationError("status", fmt.Sprintf("unknown status %q", c.Status))
	}
	return rec
}

func blank(values []string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
