package extract

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildFieldsJSONSchema returns a JSON-Schema (draft 2020-12 subset) for the
// extracted-field payload. Every key is optional, but a present key must
// carry a non-empty, normalized value; the schema is the executable form of
// that contract and guards the persistence boundary.
func BuildFieldsJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name":    map[string]any{"type": "string", "minLength": 1},
			"email":   map[string]any{"type": "string", "pattern": `^[^@\s]+@[^@\s]+\.[A-Za-z]{2,}$`},
			"phone":   map[string]any{"type": "string", "pattern": `^[6-9]\d{9}$`},
			"aadhaar": map[string]any{"type": "string", "pattern": `^\d{12}$`},
			"pan":     map[string]any{"type": "string", "pattern": `^[A-Z]{5}[0-9]{4}[A-Z]$`},
			"dob":     map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
			"address": map[string]any{"type": "string", "minLength": 1},
			"state":   map[string]any{"type": "string", "minLength": 1},
			"country": map[string]any{"type": "string", "minLength": 1},
		},
	}
}

// ValidateFields checks a Fields value against the schema. Unset fields are
// omitted from the payload and therefore never fail validation.
func ValidateFields(f Fields) error {
	data, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshal fields: %w", err)
	}
	return validateJSONAgainstSchema(BuildFieldsJSONSchema(), data)
}

// validateJSONAgainstSchema validates "data" against "schemaMap".
func validateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
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
