// Package history persists completed generations as an audit trail. Records
// capture what was asked and what came back; the persona itself is never
// stored beyond the identifying fields the client submitted.
package history

import (
	"time"

	"github.com/google/uuid"
)

// Record is a persisted generation.
type Record struct {
	ID          uuid.UUID `json:"id"`
	PersonaID   string    `json:"persona_id"`
	PersonaName string    `json:"persona_name"`
	UserTask    string    `json:"user_task"`
	Prompt      string    `json:"prompt"`
	Model       string    `json:"model"`
	DurationMS  int64     `json:"duration_ms"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateCommand carries the fields required to persist a generation.
type CreateCommand struct {
	PersonaID   string `json:"persona_id"`
	PersonaName string `json:"persona_name"`
	UserTask    string `json:"user_task"`
	Prompt      string `json:"prompt"`
	Model       string `json:"model"`
	DurationMS  int64  `json:"duration_ms"`
}
