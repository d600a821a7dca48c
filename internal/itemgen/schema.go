package itemgen

import "github.com/lexiq/lexiq/internal/llm"

// DraftSchema defines the JSON schema for LLM item drafting responses.
var DraftSchema = &llm.Schema{
	Name:        "assessment-item",
	Description: "A single language assessment item with keyed answer and rationale",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"prompt": map[string]any{
				"type":        "string",
				"description": "The item text shown to the test-taker. Cloze items contain exactly one ____ blank.",
			},
			"format": map[string]any{
				"type":        "string",
				"enum":        []any{"multiple_choice", "cloze"},
				"description": "Item format: a standalone question or a fill-in-the-blank sentence",
			},
			"choices": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Exactly 4 options where exactly one is correct",
			},
			"answer_index": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     3,
				"description": "Zero-based index of the correct option",
			},
			"difficulty": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"maximum":     5,
				"description": "Self-assessed difficulty from 1 (beginner) to 5 (advanced)",
			},
			"rationale": map[string]any{
				"type":        "string",
				"description": "Why the keyed answer is correct and each distractor is wrong, for the reviewer",
			},
		},
		"required":             []any{"prompt", "format", "choices", "answer_index", "difficulty", "rationale"},
		"additionalProperties": false,
	},
}
