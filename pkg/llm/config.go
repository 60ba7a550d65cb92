package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds upstream model connection parameters. APIKey is only ever
// sourced from configuration or environment; it is never logged.
type Config struct {
	APIKey         string `toml:"api_key"`
	Model          string `toml:"model"`
	RequestTimeout string `toml:"request_timeout"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	APIKey         string
	Model          string
	RequestTimeout string
}

// Configured reports whether an API key is present.
func (c *Config) Configured() bool {
	return c.APIKey != ""
}

// RequestTimeoutDuration returns RequestTimeout as a time.Duration.
func (c *Config) RequestTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.RequestTimeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
// A missing API key is not a validation error; it surfaces per request.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.APIKey != "" {
		c.APIKey = overlay.APIKey
	}
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
	if overlay.RequestTimeout != "" {
		c.RequestTimeout = overlay.RequestTimeout
	}
}

func (c *Config) loadDefaults() {
	if c.Model == "" {
		c.Model = "gemini-2.5-flash"
	}
	if c.RequestTimeout == "" {
		c.RequestTimeout = "60s"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.APIKey != "" {
		if v := os.Getenv(env.APIKey); v != "" {
			c.APIKey = v
		}
	}
	if env.Model != "" {
		if v := os.Getenv(env.Model); v != "" {
			c.Model = v
		}
	}
	if env.RequestTimeout != "" {
		if v := os.Getenv(env.RequestTimeout); v != "" {
			c.RequestTimeout = v
		}
	}
}

func (c *Config) validate() error {
	if c.Model == "" {
		return fmt.Errorf("model required")
	}
	if _, err := time.ParseDuration(c.RequestTimeout); err != nil {
		return fmt.Errorf("invalid request_timeout: %w", err)
	}
	return nil
}
