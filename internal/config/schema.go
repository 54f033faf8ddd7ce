package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Schema reflects HopperConfig into a JSON Schema document so editors can
// validate hand-written hopper.yaml files.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		DoNotReference: true,
	}
	schema := reflector.Reflect(&HopperConfig{})
	schema.Title = "Lane Hopper configuration"
	schema.Description = "Tunables read from hopper.yaml; distances in world units, speeds in units per second."
	return schema
}

// SchemaJSON returns the indented schema followed by a newline.
func SchemaJSON() ([]byte, error) {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("config: marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}
