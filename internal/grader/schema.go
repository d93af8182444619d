package grader

import "github.com/thomasmccollum2508/studylo-sub000/internal/llm"

// GradeSchema defines the JSON schema for semantic answer evaluation
// responses.
var GradeSchema = &llm.Schema{
	Name:        "grade-answer",
	Description: "Binary judgment of whether a learner's answer matches the expected answer in meaning",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"result": map[string]any{
				"type":        "string",
				"enum":        []any{"correct", "incorrect"},
				"description": "Whether the learner's answer is equivalent in meaning to the expected answer",
			},
		},
		"required":             []any{"result"},
		"additionalProperties": false,
	},
}
