package sdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/heartmarshall/agencydesk-backend/internal/domain"
)

// ErrPartialFailure is returned with a BulkResult when some of the
// requested clients could not be written. The rest were.
var ErrPartialFailure = errors.New("bulk operation partially failed")

// APIError is a non-2xx answer from the API.
type APIError struct {
	Status   int
	Code     string              `json:"code"`
	Message  string              `json:"message"`
	Fields   []domain.FieldError `json:"fields,omitempty"`
	Redirect string              `json:"-"`
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("api error: HTTP %d", e.Status)
	}
	return fmt.Sprintf("api error %s (HTTP %d): %s", e.Code, e.Status, e.Message)
}

// Unwrap maps the error code onto the matching domain sentinel so callers
// can use errors.Is.
func (e *APIError) Unwrap() error {
	switch e.Code {
	case "UNAUTHENTICATED":
		return domain.ErrUnauthorized
	case "FORBIDDEN":
		return domain.ErrForbidden
	case "FAILED_PRECONDITION":
		return domain.ErrFailedPrecondition
	case "VALIDATION":
		return domain.ErrValidation
	case "NOT_FOUND":
		return domain.ErrNotFound
	case "ALREADY_EXISTS":
		return domain.ErrAlreadyExists
	case "CONFLICT":
		return domain.ErrConflict
	case "CONFIRMATION_REQUIRED":
		return domain.ErrConfirmationRequired
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	var body struct {
		Error    *APIError `json:"error"`
		Redirect string    `json:"redirect"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if json.Unmarshal(raw, &body) == nil && body.Error != nil {
		apiErr.Code = body.Error.Code
		apiErr.Message = body.Error.Message
		apiErr.Fields = body.Error.Fields
	}
	apiErr.Redirect = body.Redirect
	return apiErr
}
