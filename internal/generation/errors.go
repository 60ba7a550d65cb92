package generation

import (
	"errors"
	"net/http"
)

// Domain errors for generation operations. The messages are part of the API
// contract; clients display them directly.
var (
	ErrInvalidRequest = errors.New("Missing persona or userTask in request body.")
	ErrNotConfigured  = errors.New("Server configuration error. API key is missing.")
	ErrUpstream       = errors.New("Failed to communicate with the Gemini API.")
)

// MapHTTPStatus maps generation domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrInvalidRequest) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrNotConfigured) {
		return http.StatusInternalServerError
	}
	if errors.Is(err, ErrUpstream) {
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}
