package config

import "os"

// SERVER_PASSWORD_SECRET carries no QUILL_ prefix; it is the deployment
// contract shared with the frontend's hosting environment.
const EnvServerPasswordSecret = "SERVER_PASSWORD_SECRET"

// AuthConfig holds the shared access password. An empty password is not a
// load failure; credential checks report a configuration error per request.
type AuthConfig struct {
	Password string `toml:"password"`
}

// Configured reports whether a password is present.
func (c *AuthConfig) Configured() bool {
	return c.Password != ""
}

// Finalize applies environment variable overrides. There are no defaults
// and no validation; the password is secret material sourced from the
// environment in every real deployment.
func (c *AuthConfig) Finalize() error {
	if v := os.Getenv(EnvServerPasswordSecret); v != "" {
		c.Password = v
	}
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *AuthConfig) Merge(overlay *AuthConfig) {
	if overlay.Password != "" {
		c.Password = overlay.Password
	}
}
