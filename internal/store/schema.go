package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://progress.json"

// progressSchema describes the on-disk progress document: an object of
// records, each either empty or carrying goal, current and history together.
var progressSchema = map[string]any{
	"type": "object",
	"additionalProperties": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"goal":    map[string]any{"type": "integer"},
			"current": map[string]any{"type": "integer"},
			"history": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "array",
					"minItems": 2,
					"maxItems": 2,
					"prefixItems": []any{
						map[string]any{"type": "number"},
						map[string]any{"type": "integer"},
					},
				},
			},
		},
		"dependentRequired": map[string]any{
			"goal":    []any{"current"},
			"current": []any{"goal"},
			"history": []any{"goal", "current"},
		},
		"additionalProperties": false,
	},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a decoded JSON value, so round-trip the Go literal.
		defBytes, err := json.Marshal(progressSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// validateDocument checks raw JSON against the progress schema.
func validateDocument(data []byte) error {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
