package content

// catalogSchema validates the embedded question catalog at load time.
// A catalog that doesn't conform is a packaging bug, not a runtime
// condition, so Load fails hard on violations.
var catalogSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"version": map[string]any{"type": "integer", "minimum": 1},
		"categories": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":          map[string]any{"type": "string", "minLength": 1},
					"name":        map[string]any{"type": "string", "minLength": 1},
					"icon":        map[string]any{"type": "string"},
					"description": map[string]any{"type": "string"},
				},
				"required":             []any{"id", "name"},
				"additionalProperties": false,
			},
		},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":       map[string]any{"type": "string", "minLength": 1},
					"category": map[string]any{"type": "string", "minLength": 1},
					"difficulty": map[string]any{
						"type": "string",
						"enum": []any{"easy", "medium", "hard"},
					},
					"title": map[string]any{"type": "string", "minLength": 1},
					"body":  map[string]any{"type": "string", "minLength": 1},
					"choices": map[string]any{
						"type":     "array",
						"minItems": 2,
						"items":    map[string]any{"type": "string"},
					},
					"correct_index": map[string]any{"type": "integer", "minimum": 0},
					"explanation":   map[string]any{"type": "string"},
					"tags": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string", "minLength": 1},
					},
					"duration_sec": map[string]any{"type": "integer", "minimum": 0},
				},
				"required":             []any{"id", "category", "difficulty", "body", "choices", "correct_index"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"version", "categories", "questions"},
	"additionalProperties": false,
}
