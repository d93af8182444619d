package cardgen

import "github.com/thomasmccollum2508/studylo-sub000/internal/llm"

// DeckSchema defines the JSON schema for generated flashcard decks.
var DeckSchema = &llm.Schema{
	Name:        "card-gen",
	Description: "A deck of question/answer flashcards extracted from study notes",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "A short title for the study set",
			},
			"cards": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"front": map[string]any{
							"type":        "string",
							"description": "The question or prompt side of the card",
						},
						"back": map[string]any{
							"type":        "string",
							"description": "The answer side of the card",
						},
					},
					"required":             []any{"front", "back"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"title", "cards"},
		"additionalProperties": false,
	},
}
