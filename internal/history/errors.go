package history

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates no generation record exists for the given id.
var ErrNotFound = errors.New("generation record not found")

// MapHTTPStatus maps history domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
