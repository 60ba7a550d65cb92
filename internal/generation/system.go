// Package generation orchestrates persona-grounded prompt composition: it
// builds a meta-prompt from the submitted persona and user goal, relays it to
// the upstream model, and records the completed generation.
package generation

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"quill/internal/history"
	"quill/pkg/llm"
)

// Request is the client payload for a generation call.
type Request struct {
	Persona  *Persona `json:"persona"`
	UserTask string   `json:"userTask"`
}

// Validate reports whether the request carries a usable persona and a task.
// A persona must have a non-empty ID and Prompt; a persona with no prompt
// would produce a meta-prompt with an empty persona section.
func (r *Request) Validate() error {
	if r.Persona == nil || r.Persona.ID == "" || r.Persona.Prompt == "" || r.UserTask == "" {
		return ErrInvalidRequest
	}
	return nil
}

// Result is the optimized prompt returned to the client.
type Result struct {
	Prompt string `json:"prompt"`
}

// System defines the public contract for generation operations.
type System interface {
	Handler(maxBytes int64) *Handler
	Generate(ctx context.Context, req Request) (*Result, error)
}

type orchestrator struct {
	client  llm.System
	records history.System
	logger  *slog.Logger
}

// New creates a generation orchestrator backed by the given model client and
// history store.
func New(client llm.System, records history.System, logger *slog.Logger) System {
	return &orchestrator{
		client:  client,
		records: records,
		logger:  logger.With("system", "generation"),
	}
}

func (o *orchestrator) Handler(maxBytes int64) *Handler {
	return NewHandler(o, o.logger, maxBytes)
}

// Generate composes the meta-prompt, relays it upstream, and returns the
// trimmed completion. Upstream failures are logged with detail and surfaced
// to the client as a single normalized error.
func (o *orchestrator) Generate(ctx context.Context, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	metaPrompt := BuildMetaPrompt(req.Persona.Prompt, req.UserTask)

	started := time.Now()
	text, err := o.client.GenerateText(ctx, metaPrompt, llm.Options{
		Temperature: temperature,
		TopP:        topP,
	})
	if err != nil {
		if errors.Is(err, llm.ErrNotConfigured) {
			o.logger.Error("llm api key not configured")
			return nil, ErrNotConfigured
		}
		o.logger.Error("upstream generation failed", "error", err)
		return nil, ErrUpstream
	}

	result := &Result{Prompt: strings.TrimSpace(text)}

	o.record(ctx, req, result.Prompt, time.Since(started))

	return result, nil
}

// record persists the generation best-effort. History is an audit trail; a
// write failure must not fail a generation that already succeeded.
func (o *orchestrator) record(ctx context.Context, req Request, prompt string, elapsed time.Duration) {
	if o.records == nil {
		return
	}

	cmd := history.CreateCommand{
		PersonaID:   req.Persona.ID,
		PersonaName: req.Persona.Name,
		UserTask:    req.UserTask,
		Prompt:      prompt,
		Model:       o.client.Model(),
		DurationMS:  elapsed.Milliseconds(),
	}

	if _, err := o.records.Save(ctx, cmd); err != nil {
		o.logger.Error("failed to record generation", "error", err)
	}
}
