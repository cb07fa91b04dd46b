package clients

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound  = errors.New("client not found")
	ErrDuplicate = errors.New("client already exists")
	ErrInvalid   = errors.New("invalid client")
)

// MapHTTPStatus maps client domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalid) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
