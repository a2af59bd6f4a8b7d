package content

import "github.com/sp80808/Highway-Code-Master/internal/llm"

// QuestionListSchema defines the JSON schema for question generation
// responses: an object wrapping an array so providers that require a
// top-level object can serve it.
var QuestionListSchema = &llm.Schema{
	Name:        "highway-code-questions",
	Description: "A batch of UK Highway Code multiple-choice questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"questionText": map[string]any{
							"type":        "string",
							"description": "The question based on the UK Highway Code.",
						},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "A list of 4 possible answers.",
						},
						"correctOptionIndex": map[string]any{
							"type":        "integer",
							"description": "The index (0-3) of the correct answer.",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "A concise explanation of why the answer is correct, citing the Highway Code rule if possible.",
						},
						"category": map[string]any{
							"type":        "string",
							"description": "The specific topic of the question.",
						},
					},
					"required":             []any{"questionText", "options", "correctOptionIndex", "explanation", "category"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

// StudyGuideSchema defines the JSON schema for study guide responses.
var StudyGuideSchema = &llm.Schema{
	Name:        "highway-code-study-guide",
	Description: "A structured study guide for one UK Highway Code topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":        map[string]any{"type": "string"},
			"introduction": map[string]any{"type": "string"},
			"keyRules": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title":   map[string]any{"type": "string"},
						"content": map[string]any{"type": "string"},
					},
					"required":             []any{"title", "content"},
					"additionalProperties": false,
				},
			},
			"commonSigns": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name":        map[string]any{"type": "string"},
						"description": map[string]any{"type": "string"},
						"shape":       map[string]any{"type": "string"},
						"icon": map[string]any{
							"type":        "string",
							"description": "A relevant emoji representing the sign or context (e.g., a stop sign, warning triangle, or parking symbol)",
						},
					},
					"required":             []any{"name", "description", "shape", "icon"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"title", "introduction", "keyRules", "commonSigns"},
		"additionalProperties": false,
	},
}
