package api

import (
	"quill/internal/auth"
	"quill/internal/config"
	"quill/internal/generation"
	"quill/internal/history"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Auth       auth.System
	Generation generation.System
	History    history.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(cfg *config.Config, runtime *Runtime) *Domain {
	historySystem := history.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)

	authSystem := auth.New(
		cfg.Auth.Password,
		runtime.Logger,
	)

	generationSystem := generation.New(
		runtime.LLM,
		historySystem,
		runtime.Logger,
	)

	return &Domain{
		Auth:       authSystem,
		Generation: generationSystem,
		History:    historySystem,
	}
}
