package communications

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound         = errors.New("message not found")
	ErrDuplicate        = errors.New("message already exists")
	ErrInvalidMessage   = errors.New("invalid message")
	ErrInvalidSentiment = errors.New("invalid sentiment label")
)

// MapHTTPStatus maps communication domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidMessage) || errors.Is(err, ErrInvalidSentiment) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
