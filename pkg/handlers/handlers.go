// Package handlers provides JSON response helpers shared by all HTTP handlers.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

// ErrMethodNotAllowed carries the exact error text the API contract exposes
// for requests using an unsupported HTTP method.
var ErrMethodNotAllowed = errors.New("Method Not Allowed")

// RespondJSON writes data as a JSON response with the given status code.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError logs the error and writes it as a JSON error envelope.
// The envelope exposes only err.Error(); callers are responsible for
// mapping internal failures to safe sentinel errors before responding.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	logger.Error("request failed", "status", status, "error", err)
	RespondJSON(w, status, map[string]string{"error": err.Error()})
}

// RequireMethod guards endpoints registered without a method-qualified
// pattern. Returns true when the request method matches; otherwise responds
// 405 with the JSON error envelope and returns false.
func RequireMethod(w http.ResponseWriter, r *http.Request, method string, logger *slog.Logger) bool {
	if r.Method == method {
		return true
	}
	RespondError(w, logger, http.StatusMethodNotAllowed, ErrMethodNotAllowed)
	return false
}
