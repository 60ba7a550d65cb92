// Package llm provides text generation against the Gemini API behind a
// System interface with lifecycle coordination.
package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"quill/pkg/lifecycle"
)

// Options carries the sampling parameters for a single generation call.
type Options struct {
	Temperature float32
	TopP        float32
}

// System generates text from the upstream model.
type System interface {
	// GenerateText sends prompt to the model and returns the completion text.
	// The call runs under the configured request timeout derived from ctx.
	// Returns ErrNotConfigured when no API key is set and ErrEmptyCompletion
	// when the model returns only whitespace.
	GenerateText(ctx context.Context, prompt string, opts Options) (string, error)
	// Model returns the configured model identifier.
	Model() string
	// Start registers startup logging with the lifecycle coordinator.
	Start(lc *lifecycle.Coordinator) error
}

type gemini struct {
	client *genai.Client
	model  string
	cfg    *Config
	logger *slog.Logger
}

// New creates an llm system from the given configuration. When no API key is
// configured the system is still constructed; every GenerateText call then
// fails with ErrNotConfigured, surfacing the misconfiguration per request
// rather than at startup.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	g := &gemini{
		model:  cfg.Model,
		cfg:    cfg,
		logger: logger.With("system", "llm"),
	}

	if !cfg.Configured() {
		return g, nil
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	g.client = client
	return g, nil
}

func (g *gemini) Model() string {
	return g.model
}

func (g *gemini) Start(lc *lifecycle.Coordinator) error {
	lc.OnStartup(func() {
		if g.client == nil {
			g.logger.Warn("llm api key not configured; generation requests will fail")
			return
		}
		g.logger.Info("llm client ready", "model", g.model)
	})
	return nil
}

func (g *gemini) GenerateText(ctx context.Context, prompt string, opts Options) (string, error) {
	if g.client == nil {
		return "", ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, g.cfg.RequestTimeoutDuration())
	defer cancel()

	resp, err := g.client.Models.GenerateContent(
		ctx,
		g.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature: genai.Ptr(opts.Temperature),
			TopP:        genai.Ptr(opts.TopP),
		},
	)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyCompletion
	}

	return text, nil
}
