package cases

import (
	"errors"
	"net/http"
)

// Domain errors for case operations.
var (
	ErrNotFound          = errors.New("case not found")
	ErrDocumentNotFound  = errors.New("document not found")
	ErrDuplicate         = errors.New("case already exists")
	ErrUnknownState      = errors.New("unknown case state")
	ErrInvalidTransition = errors.New("transition not allowed from current state")
	ErrClientMismatch    = errors.New("document belongs to a different client")
	ErrCaseComplete      = errors.New("case is complete")
)

// MapHTTPStatus maps case domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrDocumentNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidTransition) ||
		errors.Is(err, ErrClientMismatch) ||
		errors.Is(err, ErrCaseComplete) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrUnknownState) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
