package generation

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"quill/pkg/handlers"
	"quill/pkg/routes"
)

// Handler provides the HTTP endpoint for prompt generation.
type Handler struct {
	sys      System
	logger   *slog.Logger
	maxBytes int64
}

// NewHandler creates a Handler with the given system, logger, and request
// body size cap.
func NewHandler(sys System, logger *slog.Logger, maxBytes int64) *Handler {
	return &Handler{
		sys:      sys,
		logger:   logger.With("handler", "generation"),
		maxBytes: maxBytes,
	}
}

// Routes returns the route group definition for the generation endpoint.
// The route is registered method-agnostic so non-POST requests receive the
// JSON 405 envelope rather than the mux plain-text response.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/generate",
		Routes: []routes.Route{
			{Pattern: "", Handler: h.Generate},
		},
	}
}

// Generate decodes a persona and user goal from the request body and responds
// with the optimized prompt.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	if !handlers.RequireMethod(w, r, http.MethodPost, h.logger) {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req Request
	if err := dec.Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Generate(r.Context(), req)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
