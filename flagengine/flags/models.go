// Package flags models the configuration profile payload: a JSON object
// mapping flag keys to either a scalar value or a multi-variant flag.
package flags

import (
	"encoding/json"
	"fmt"

	"github.com/naviplus-asp/openfeature-provider-go-aws-appconfig/flagengine/targeting"
)

// Variant is a named candidate value of a multi-variant flag.
type Variant struct {
	Name  string      `json:"name"`
	Value interface{} `json:"value"`
}

// MultiVariantFlag is a flag whose value is chosen from a set of variants
// by targeting rules, falling back to the declared default variant.
type MultiVariantFlag struct {
	Variants       []Variant        `json:"variants"`
	DefaultVariant string           `json:"defaultVariant"`
	TargetingRules []targeting.Rule `json:"targetingRules"`
}

// Definition is one parsed flag entry. Exactly one of Scalar and
// MultiVariant is meaningful; MultiVariant is nil for scalar flags.
type Definition struct {
	Scalar       interface{}
	MultiVariant *MultiVariantFlag
}

// Configuration is a freshly fetched configuration snapshot. Entries stay
// raw until a resolution asks for them, so one malformed flag only fails
// requests for that flag.
type Configuration map[string]json.RawMessage

// ParseConfiguration decodes a raw configuration payload.
func ParseConfiguration(payload []byte) (Configuration, error) {
	var cfg Configuration
	if err := json.Unmarshal(payload, &cfg); err != nil {
		return nil, fmt.Errorf("decode configuration payload: %w", err)
	}
	return cfg, nil
}

// ParseDefinition decodes one flag entry. A JSON object carrying a
// "variants" member is a multi-variant flag and must validate against
// the multi-variant schema; any other value is a scalar.
func ParseDefinition(raw json.RawMessage) (*Definition, error) {
	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, fmt.Errorf("decode flag value: %w", err)
	}
	obj, ok := value.(map[string]interface{})
	if !ok {
		return &Definition{Scalar: value}, nil
	}
	if _, ok := obj["variants"]; !ok {
		return &Definition{Scalar: value}, nil
	}

	if err := validateMultiVariant(raw); err != nil {
		return nil, err
	}
	var flag MultiVariantFlag
	if err := json.Unmarshal(raw, &flag); err != nil {
		return nil, fmt.Errorf("decode multi-variant flag: %w", err)
	}
	return &Definition{MultiVariant: &flag}, nil
}
