package llm

import "errors"

var (
	// ErrNotConfigured indicates no API key is configured.
	ErrNotConfigured = errors.New("llm api key not configured")

	// ErrEmptyCompletion indicates the model returned no usable text.
	ErrEmptyCompletion = errors.New("llm returned an empty completion")
)
