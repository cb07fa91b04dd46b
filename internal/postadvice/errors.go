package postadvice

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound      = errors.New("follow-up item not found")
	ErrDuplicate     = errors.New("follow-up item already exists")
	ErrInvalidItem   = errors.New("invalid follow-up item")
	ErrInvalidStatus = errors.New("invalid follow-up status")
)

// MapHTTPStatus maps post-advice domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidItem) || errors.Is(err, ErrInvalidStatus) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
