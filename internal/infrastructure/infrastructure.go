// Package infrastructure provides core service initialization for application startup.
// It assembles common dependencies (logging, database, llm client) that domain systems require.
package infrastructure

import (
	"fmt"
	"log/slog"
	"os"

	"quill/internal/config"
	"quill/pkg/database"
	"quill/pkg/lifecycle"
	"quill/pkg/llm"
)

// Infrastructure holds the core systems required by all domain modules.
// It provides a single point of initialization for lifecycle coordination,
// logging, database access, and the upstream model client.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	LLM       llm.System
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	model, err := llm.New(&cfg.LLM, logger)
	if err != nil {
		return nil, fmt.Errorf("llm init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Database:  db,
		LLM:       model,
	}, nil
}

// Start registers all infrastructure systems with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	if err := i.LLM.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("llm start failed: %w", err)
	}
	return nil
}
