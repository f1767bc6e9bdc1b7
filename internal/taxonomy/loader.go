package taxonomy

import (
	_ "embed"
	"encoding/json"
	"os"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaJSON string

// LoadFile reads a taxonomy override from a JSON file, validates it
// against the embedded schema, and returns it. Deployments that tune
// the catalog without rebuilding use this instead of Default.
func LoadFile(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "read failed", Cause: err}
	}

	schemaLoader := gojsonschema.NewStringLoader(schemaJSON)
	docLoader := gojsonschema.NewBytesLoader(data)
	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "schema validation failed", Cause: err}
	}
	if !result.Valid() {
		msg := "document does not match schema"
		if errs := result.Errors(); len(errs) > 0 {
			msg = errs[0].String()
		}
		return nil, &LoadError{Path: path, Message: msg}
	}

	var t Taxonomy
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, &LoadError{Path: path, Message: "parse failed", Cause: err}
	}
	if err := t.Validate(); err != nil {
		return nil, &LoadError{Path: path, Message: "invalid content", Cause: err}
	}
	return &t, nil
}
