package generation

import "fmt"

// Sampling parameters for prompt composition. Mid-range temperature keeps the
// rewrite faithful to the user's goal while allowing structural latitude.
const (
	temperature float32 = 0.5
	topP        float32 = 0.95
)

const metaPromptTemplate = `
You are a world-class prompt engineering expert. Your task is to take a user's goal and rewrite it into a detailed, structured prompt that conforms to the specifications of a target AI persona.

**Target AI Persona System Prompt:**
---
%s
---

**User's Goal:**
---
%s
---

**Your Instructions:**
1.  Deeply analyze the user's goal to understand their true intent.
2.  Analyze the rules, format, roles, and directives defined in the "Target AI Persona System Prompt."
3.  Rewrite the user's goal into a new, complete, and highly-detailed prompt that is perfectly formatted FOR the target persona.
4.  The new prompt must fully incorporate the user's goal while strictly adhering to all formatting rules, role-playing instructions, and constraints of the target persona.
5.  IMPORTANT: Your entire output must be ONLY the final, rewritten prompt text. Do NOT output any explanation, conversation, or introductory phrases like "Here is the optimized prompt:". Your response should start directly with the content of the rewritten prompt.
`

// BuildMetaPrompt composes the instruction prompt sent to the upstream model.
// The persona prompt and user goal are embedded verbatim between delimiters;
// no escaping or truncation is applied.
func BuildMetaPrompt(personaPrompt, userTask string) string {
	return fmt.Sprintf(metaPromptTemplate, personaPrompt, userTask)
}
