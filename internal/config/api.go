package config

import (
	"fmt"
	"os"

	"quill/pkg/formatting"
	"quill/pkg/middleware"
	"quill/pkg/openapi"
	"quill/pkg/pagination"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "QUILL_CORS_ENABLED",
	Origins:          "QUILL_CORS_ORIGINS",
	AllowedMethods:   "QUILL_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "QUILL_CORS_ALLOWED_HEADERS",
	AllowCredentials: "QUILL_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "QUILL_CORS_MAX_AGE",
}

var paginationEnv = &pagination.ConfigEnv{
	DefaultPageSize: "QUILL_PAGINATION_DEFAULT_PAGE_SIZE",
	MaxPageSize:     "QUILL_PAGINATION_MAX_PAGE_SIZE",
}

var openapiEnv = &openapi.ConfigEnv{
	Title:       "QUILL_OPENAPI_TITLE",
	Description: "QUILL_OPENAPI_DESCRIPTION",
}

// APIConfig holds API routing, CORS, pagination, and OpenAPI settings.
type APIConfig struct {
	BasePath       string                `toml:"base_path"`
	MaxRequestSize string                `toml:"max_request_size"`
	CORS           middleware.CORSConfig `toml:"cors"`
	Pagination     pagination.Config     `toml:"pagination"`
	OpenAPI        openapi.Config        `toml:"openapi"`
}

func (c *APIConfig) MaxRequestSizeBytes() int64 {
	size, err := formatting.ParseBytes(c.MaxRequestSize)
	if err != nil {
		return 1024 * 1024 // 1MB fallback
	}
	return size
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested CORS, pagination, and OpenAPI configs.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.Pagination.Finalize(paginationEnv); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	if err := c.OpenAPI.Finalize(openapiEnv); err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxRequestSize != "" {
		c.MaxRequestSize = overlay.MaxRequestSize
	}

	c.CORS.Merge(&overlay.CORS)
	c.Pagination.Merge(&overlay.Pagination)
	c.OpenAPI.Merge(&overlay.OpenAPI)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.MaxRequestSize == "" {
		c.MaxRequestSize = "1MB"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv("QUILL_API_BASE_PATH"); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv("QUILL_API_MAX_REQUEST_SIZE"); v != "" {
		c.MaxRequestSize = v
	}
}
