// Package flagengine resolves feature-flag values from a configuration
// snapshot. It is pure: fetching the snapshot and managing the session
// against the configuration source belong to the caller.
package flagengine

import (
	"github.com/naviplus-asp/openfeature-provider-go-aws-appconfig/flagengine/flags"
)

// Evaluate resolves one flag key from a configuration snapshot into the
// requested output type.
//
// A missing key behaves as a null scalar: the type's zero value with
// reason DEFAULT. Scalar flags coerce directly. Multi-variant flags go
// through variant selection; the reason is TARGETING_MATCH only when a
// targeting rule naming the selected variant actually matches the
// attributes, otherwise DEFAULT. Failures surface as ERROR resolutions,
// never as panics or returned errors.
func Evaluate(cfg flags.Configuration, key string, typ ValueType, attributes map[string]interface{}) Resolution {
	raw, ok := cfg[key]
	if !ok {
		return Resolution{
			Value:   coerceValue(typ, nil),
			Variant: DefaultVariantName,
			Reason:  ReasonDefault,
		}
	}

	def, err := flags.ParseDefinition(raw)
	if err != nil {
		return ErrorResolution(typ, ErrorCodeParseError, err.Error())
	}

	if def.MultiVariant == nil {
		return Resolution{
			Value:   coerceValue(typ, def.Scalar),
			Variant: DefaultVariantName,
			Reason:  ReasonDefault,
		}
	}

	variant, err := SelectVariant(def.MultiVariant, attributes)
	if err != nil {
		return ErrorResolution(typ, ErrorCodeGeneral, err.Error())
	}

	reason := ReasonDefault
	if len(attributes) > 0 && ruleTargets(def.MultiVariant, variant.Name, attributes) {
		reason = ReasonTargetingMatch
	}
	return Resolution{
		Value:   coerceValue(typ, variant.Value),
		Variant: variant.Name,
		Reason:  reason,
	}
}
