// Package httperr renders domain errors as the API's JSON error banner:
//
//	{"error": {"code": "...", "message": "...", "fields": [...]}, "redirect": "/"}
package httperr

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/heartmarshall/agencydesk-backend/internal/domain"
)

// Error codes.
const (
	CodeValidation           = "VALIDATION"
	CodeUnauthenticated      = "UNAUTHENTICATED"
	CodeForbidden            = "FORBIDDEN"
	CodeNotFound             = "NOT_FOUND"
	CodeAlreadyExists        = "ALREADY_EXISTS"
	CodeConflict             = "CONFLICT"
	CodeFailedPrecondition   = "FAILED_PRECONDITION"
	CodeConfirmationRequired = "CONFIRMATION_REQUIRED"
	CodeRateLimited          = "RATE_LIMITED"
	CodeInternal             = "INTERNAL"
)

// SignInPath is where unauthenticated callers are sent.
const SignInPath = "/"

// Detail is the error object of the banner.
type Detail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  []domain.FieldError `json:"fields,omitempty"`
}

// Body is the full error response.
type Body struct {
	Error    Detail `json:"error"`
	Redirect string `json:"redirect,omitempty"`
}

// FromError classifies err into a status code and banner. Unknown errors
// become a generic 500 whose message does not leak internals.
func FromError(err error) (int, Body) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, Body{Error: Detail{Code: CodeValidation, Message: "invalid input", Fields: ve.Errors}}
	case errors.Is(err, domain.ErrUnauthorized):
		return Unauthenticated("sign in to continue")
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, Body{Error: Detail{Code: CodeForbidden, Message: "you do not have permission to access this data"}}
	case errors.Is(err, domain.ErrFailedPrecondition):
		return http.StatusPreconditionFailed, Body{Error: Detail{Code: CodeFailedPrecondition, Message: preconditionMessage(err)}}
	case errors.Is(err, domain.ErrConfirmationRequired):
		return http.StatusPreconditionRequired, Body{Error: Detail{Code: CodeConfirmationRequired, Message: "this action must be explicitly confirmed"}}
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, Body{Error: Detail{Code: CodeNotFound, Message: "not found"}}
	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict, Body{Error: Detail{Code: CodeAlreadyExists, Message: "already exists"}}
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, Body{Error: Detail{Code: CodeConflict, Message: "conflicting update, reload and try again"}}
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, Body{Error: Detail{Code: CodeValidation, Message: "invalid input"}}
	}
	return http.StatusInternalServerError, Body{Error: Detail{Code: CodeInternal, Message: "something went wrong, please try again"}}
}

// Unauthenticated builds the 401 banner that sends the caller to sign in.
func Unauthenticated(message string) (int, Body) {
	return http.StatusUnauthorized, Body{
		Error:    Detail{Code: CodeUnauthenticated, Message: message},
		Redirect: SignInPath,
	}
}

// Write sends body as JSON with the given status.
func Write(w http.ResponseWriter, status int, body Body) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

// WriteError classifies err and writes the banner.
func WriteError(w http.ResponseWriter, err error) {
	status, body := FromError(err)
	Write(w, status, body)
}

// preconditionMessage keeps the actionable part of the error text.
func preconditionMessage(err error) string {
	marker := domain.ErrFailedPrecondition.Error() + ": "
	if _, after, ok := strings.Cut(err.Error(), marker); ok && after != "" {
		return after
	}
	return "a required index or setting is missing; contact your administrator"
}
