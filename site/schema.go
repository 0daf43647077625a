package site

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
	"github.com/scholarpage/scholarpage/constant"
)

// Schema returns the JSON schema describing site files.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}

	schema := r.Reflect(&Site{})
	schema.Title = constant.App + " site file"
	return json.MarshalIndent(schema, "", "  ")
}
