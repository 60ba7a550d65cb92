// Package config loads and finalizes service configuration from TOML files
// and environment variables. A base config.toml may be overlaid by
// config.<env>.toml selected through QUILL_ENV; environment variables take
// final precedence.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"quill/pkg/database"
	"quill/pkg/llm"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"

	EnvQuillEnv             = "QUILL_ENV"
	EnvQuillShutdownTimeout = "QUILL_SHUTDOWN_TIMEOUT"
	EnvQuillVersion         = "QUILL_VERSION"
)

var databaseEnv = &database.Env{
	Host:            "QUILL_DB_HOST",
	Port:            "QUILL_DB_PORT",
	Name:            "QUILL_DB_NAME",
	User:            "QUILL_DB_USER",
	Password:        "QUILL_DB_PASSWORD",
	SSLMode:         "QUILL_DB_SSL_MODE",
	MaxOpenConns:    "QUILL_DB_MAX_OPEN_CONNS",
	MaxIdleConns:    "QUILL_DB_MAX_IDLE_CONNS",
	ConnMaxLifetime: "QUILL_DB_CONN_MAX_LIFETIME",
	ConnTimeout:     "QUILL_DB_CONN_TIMEOUT",
}

// LLM_API_KEY carries no QUILL_ prefix; it is the deployment contract shared
// with the frontend's hosting environment.
var llmEnv = &llm.Env{
	APIKey:         "LLM_API_KEY",
	Model:          "QUILL_LLM_MODEL",
	RequestTimeout: "QUILL_LLM_REQUEST_TIMEOUT",
}

// Config is the root configuration for the Quill service.
type Config struct {
	Server          ServerConfig    `toml:"server"`
	Database        database.Config `toml:"database"`
	LLM             llm.Config      `toml:"llm"`
	Auth            AuthConfig      `toml:"auth"`
	API             APIConfig       `toml:"api"`
	ShutdownTimeout string          `toml:"shutdown_timeout"`
	Version         string          `toml:"version"`
}

// Env returns the QUILL_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvQuillEnv); env != "" {
		return env
	}
	return "local"
}

// ShutdownTimeoutDuration returns ShutdownTimeout as a time.Duration.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// Load reads the base config (if present), applies any environment overlay,
// and finalizes all values. If no config.toml exists, defaults and environment
// variables provide all configuration.
func Load() (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(BaseConfigFile); err == nil {
		loaded, err := load(BaseConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if path := overlayPath(); path != "" {
		overlay, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Merge(overlay)
	}

	if err := cfg.finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}

	return cfg, nil
}

// Merge overwrites non-zero fields from overlay across all sub-configs.
func (c *Config) Merge(overlay *Config) {
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Server.Merge(&overlay.Server)
	c.Database.Merge(&overlay.Database)
	c.LLM.Merge(&overlay.LLM)
	c.Auth.Merge(&overlay.Auth)
	c.API.Merge(&overlay.API)
}

func (c *Config) finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Database.Finalize(databaseEnv); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.LLM.Finalize(llmEnv); err != nil {
		return fmt.Errorf("llm: %w", err)
	}
	if err := c.Auth.Finalize(); err != nil {
		return fmt.Errorf("auth: %w", err)
	}
	if err := c.API.Finalize(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	return nil
}

func (c *Config) loadDefaults() {
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
	if c.Version == "" {
		c.Version = "0.1.0"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvQuillShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
	if v := os.Getenv(EnvQuillVersion); v != "" {
		c.Version = v
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath() string {
	if env := os.Getenv(EnvQuillEnv); env != "" {
		path := fmt.Sprintf(OverlayConfigPattern, env)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
