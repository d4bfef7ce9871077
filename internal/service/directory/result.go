package directory

import "github.com/google/uuid"

// BulkResult reports the outcome of a bulk update or delete.
type BulkResult struct {
	Requested int           `json:"requested"`
	Succeeded int           `json:"succeeded"`
	Failures  []BulkFailure `json:"failures,omitempty"`
}

// BulkFailure describes one client a bulk operation could not write.
type BulkFailure struct {
	ID    uuid.UUID `json:"id"`
	Error string    `json:"error"`
}

// ImportResult contains the result of a CSV import.
type ImportResult struct {
	Imported int           `json:"imported"`
	Skipped  int           `json:"skipped"`
	Errors   []ImportError `json:"errors,omitempty"`
}

// ImportError describes a single rejected row.
type ImportError struct {
	Line   int    `json:"line"`
	Name   string `json:"nome,omitempty"`
	Reason string `json:"reason"`
}

// ExportResult is a rendered CSV export. Key is set when the file was
// archived to export storage.
type ExportResult struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Data        []byte `json:"-"`
	Key         string `json:"key,omitempty"`
	Count       int    `json:"count"`
}
