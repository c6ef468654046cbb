package profile

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// ConfigSchema returns a JSON schema describing the overrides document,
// for editor validation of rulekit.toml (via taplo or similar) and of
// JSON-encoded configs.
func ConfigSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true,
		DoNotReference: true,
	}
	schema := reflector.Reflect(&Config{})
	schema.Title = "rulekit profile overrides"
	schema.Description = "Per-destination overrides for the rulekit profile table."
	return schema
}

// ConfigSchemaJSON returns the schema as indented JSON.
func ConfigSchemaJSON() ([]byte, error) {
	data, err := json.MarshalIndent(ConfigSchema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal config schema: %w", err)
	}
	return data, nil
}
