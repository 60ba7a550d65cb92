package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"quill/pkg/handlers"
	"quill/pkg/routes"
)

// Handler provides the HTTP endpoint for credential verification.
type Handler struct {
	sys    System
	logger *slog.Logger
}

type verifyRequest struct {
	Password string `json:"password"`
}

type verifyResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "auth"),
	}
}

// Routes returns the route group definition for the auth endpoint.
// The route is registered method-agnostic so non-POST requests receive the
// JSON 405 envelope rather than the mux plain-text response.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/auth",
		Routes: []routes.Route{
			{Pattern: "", Handler: h.Verify},
		},
	}
}

// Verify checks a submitted password against the configured shared secret.
// A malformed or empty body is treated as a mismatch, not a bad request.
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	if !handlers.RequireMethod(w, r, http.MethodPost, h.logger) {
		return
	}

	var req verifyRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	switch h.sys.Verify(req.Password) {
	case OutcomeMatch:
		handlers.RespondJSON(w, http.StatusOK, verifyResult{Success: true})
	case OutcomeConfigError:
		handlers.RespondJSON(w, http.StatusInternalServerError, verifyResult{
			Success: false,
			Message: "서버 설정 오류입니다.",
		})
	default:
		handlers.RespondJSON(w, http.StatusUnauthorized, verifyResult{
			Success: false,
			Message: "비밀번호가 올바르지 않습니다.",
		})
	}
}
