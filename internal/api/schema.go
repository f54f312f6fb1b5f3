package api

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

var idSchema = map[string]any{
	"type": []any{"string", "integer"},
}

var quizSchema = map[string]any{
	"type":     "object",
	"required": []any{"id", "title"},
	"properties": map[string]any{
		"id":    idSchema,
		"title": map[string]any{"type": "string"},
	},
}

// quizListSchema describes GET /api/quizzes. A missing or null "quizzes"
// field is accepted and read as an empty list.
var quizListSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"quizzes": map[string]any{
			"type":  []any{"array", "null"},
			"items": quizSchema,
		},
	},
}

// quizDetailSchema describes GET /api/quizzes/:id. correct_option is only
// type-checked; its range against options is not validated.
var quizDetailSchema = map[string]any{
	"type":     "object",
	"required": []any{"quiz", "questions"},
	"properties": map[string]any{
		"quiz": quizSchema,
		"questions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"id", "text", "options", "correct_option"},
				"properties": map[string]any{
					"id":   idSchema,
					"text": map[string]any{"type": "string"},
					"options": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"correct_option": map[string]any{"type": "integer"},
				},
			},
		},
	},
}

// schemaCache caches compiled schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// validateBody checks raw JSON against the named schema definition.
func validateBody(name string, definition map[string]any, raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compiledSchema(name, definition)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", name, err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func compiledSchema(name string, definition map[string]any) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler wants a plain decoded JSON value.
	defBytes, err := json.Marshal(definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(name, compiled)
	return compiled, nil
}
