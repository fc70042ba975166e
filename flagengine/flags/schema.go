package flags

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// multiVariantSchema is the shape a flag entry must have once it declares
// a "variants" member. "targetingRules" is optional and defaults to none.
const multiVariantSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["variants", "defaultVariant"],
  "properties": {
    "variants": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name"],
        "properties": {
          "name": {"type": "string"},
          "value": {}
        }
      }
    },
    "defaultVariant": {"type": "string"},
    "targetingRules": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["variant"],
        "properties": {
          "variant": {"type": "string"},
          "conditions": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["attribute", "operator"],
              "properties": {
                "attribute": {"type": "string"},
                "operator": {"type": "string"},
                "value": {}
              }
            }
          }
        }
      }
    }
  }
}`

var multiVariantLoader = gojsonschema.NewStringLoader(multiVariantSchema)

func validateMultiVariant(raw []byte) error {
	result, err := gojsonschema.Validate(multiVariantLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("validate multi-variant flag: %w", err)
	}
	if !result.Valid() {
		return fmt.Errorf("invalid multi-variant flag: %s", result.Errors()[0])
	}
	return nil
}
