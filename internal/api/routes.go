package api

import (
	"net/http"

	"quill/internal/config"
	"quill/pkg/openapi"
	"quill/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
	specBytes []byte,
) {
	routes.Register(
		mux,
		domain.Auth.Handler().Routes(),
		domain.Generation.Handler(cfg.API.MaxRequestSizeBytes()).Routes(),
		domain.History.Handler().Routes(),
	)

	mux.Handle("GET /openapi.json", openapi.ServeSpec(specBytes))
}
