package guidance

import "github.com/BHARTIYAYASH/manasveda/internal/llm"

// NoteSchema defines the JSON schema for wellness note generation.
var NoteSchema = &llm.Schema{
	Name:        "wellness-note",
	Description: "A short personal wellness note grounded in the user's dosha profile",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"headline": map[string]any{
				"type":        "string",
				"description": "Warm, specific headline (4-8 words)",
			},
			"body": map[string]any{
				"type":        "string",
				"description": "3-5 sentences relating the profile to daily life, in plain language",
			},
			"practices": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-3 one-line suggestions drawn from the listed practices",
			},
		},
		"required":             []any{"headline", "body", "practices"},
		"additionalProperties": false,
	},
}
