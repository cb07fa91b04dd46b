// Package prompts implements the prompt override domain: named instruction
// overrides per communication kind, with hardcoded defaults and prompt
// composition for the message generators.
package prompts

// Prompt represents a named instruction override for a communication kind.
type Prompt struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Kind         Kind    `json:"kind"`
	Instructions string  `json:"instructions"`
	Description  *string `json:"description"`
	Active       bool    `json:"active"`
}

// CreateCommand carries the data needed to create a new prompt override.
type CreateCommand struct {
	Name         string  `json:"name"`
	Kind         Kind    `json:"kind"`
	Instructions string  `json:"instructions"`
	Description  *string `json:"description"`
}

// UpdateCommand carries the data needed to update an existing prompt override.
type UpdateCommand struct {
	Name         string  `json:"name"`
	Kind         Kind    `json:"kind"`
	Instructions string  `json:"instructions"`
	Description  *string `json:"description"`
}
