package history

import (
	"net/url"

	"quill/pkg/query"
	"quill/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "generations", "g").
	Project("id", "ID").
	Project("persona_id", "PersonaID").
	Project("persona_name", "PersonaName").
	Project("user_task", "UserTask").
	Project("prompt", "Prompt").
	Project("model", "Model").
	Project("duration_ms", "DurationMS").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{
	Field:      "created_at",
	Descending: true,
}

// Filters contains optional filtering criteria for record queries.
// Nil fields are ignored. PersonaID and Model use exact matching.
// PersonaName uses case-insensitive contains matching.
type Filters struct {
	PersonaID   *string `json:"persona_id,omitempty"`
	PersonaName *string `json:"persona_name,omitempty"`
	Model       *string `json:"model,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("PersonaID", f.PersonaID).
		WhereContains("PersonaName", f.PersonaName).
		WhereEquals("Model", f.Model)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if p := values.Get("persona_id"); p != "" {
		f.PersonaID = &p
	}

	if n := values.Get("persona_name"); n != "" {
		f.PersonaName = &n
	}

	if m := values.Get("model"); m != "" {
		f.Model = &m
	}

	return f
}

func scanRecord(s repository.Scanner) (Record, error) {
	var rec Record
	err := s.Scan(
		&rec.ID,
		&rec.PersonaID,
		&rec.PersonaName,
		&rec.UserTask,
		&rec.Prompt,
		&rec.Model,
		&rec.DurationMS,
		&rec.CreatedAt,
	)
	return rec, err
}
