package generation

// Persona is a target AI persona supplied by the client with each request.
// Personas live entirely client-side; the server never stores or edits them.
type Persona struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Prompt string `json:"prompt"`
}
