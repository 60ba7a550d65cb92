// Package auth gates access behind a single shared password. There are no
// accounts or sessions; the frontend submits the password once and keeps the
// result client-side.
package auth

import (
	"crypto/subtle"
	"log/slog"
)

// Outcome is the result of a credential check.
type Outcome int

const (
	// OutcomeMismatch indicates the submitted password did not match.
	OutcomeMismatch Outcome = iota
	// OutcomeMatch indicates the submitted password matched the secret.
	OutcomeMatch
	// OutcomeConfigError indicates no secret is configured on the server.
	OutcomeConfigError
)

// System defines the public contract for credential verification.
type System interface {
	Handler() *Handler
	Verify(submitted string) Outcome
}

type verifier struct {
	secret string
	logger *slog.Logger
}

// New creates a credential verifier for the given shared secret. An empty
// secret is accepted; every check then reports OutcomeConfigError.
func New(secret string, logger *slog.Logger) System {
	return &verifier{
		secret: secret,
		logger: logger.With("system", "auth"),
	}
}

func (v *verifier) Handler() *Handler {
	return NewHandler(v, v.logger)
}

// Verify compares submitted against the configured secret in constant time.
// The submitted value is never logged.
func (v *verifier) Verify(submitted string) Outcome {
	if v.secret == "" {
		v.logger.Error("server password secret not configured")
		return OutcomeConfigError
	}

	if subtle.ConstantTimeCompare([]byte(submitted), []byte(v.secret)) == 1 {
		return OutcomeMatch
	}

	return OutcomeMismatch
}
