package persistence

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed state.schema.json
var stateSchema string

var compiledSchema = jsonschema.MustCompileString("state.schema.json", stateSchema)

// ValidateStateJSON checks raw state JSON against the world schema. A passing
// document may still fail referential validation; this catches shape damage
// (truncation, wrong types, missing sections) before decoding.
func ValidateStateJSON(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse state json: %w", err)
	}
	if err := compiledSchema.Validate(doc); err != nil {
		return fmt.Errorf("state schema: %w", err)
	}
	return nil
}
