package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildDocumentEnvelopeSchema returns the JSON-Schema for a merged document
// object. Extracted keys are free-form; only the bookkeeping arrays the merge
// step may add ("errors", "pages") have a fixed shape.
func BuildDocumentEnvelopeSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"errors": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []string{"page", "error"},
					"properties": map[string]any{
						"page":  map[string]any{"type": "integer", "minimum": 1},
						"error": map[string]any{"type": "string"},
					},
				},
			},
			"pages": map[string]any{
				"type": "array",
			},
		},
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
