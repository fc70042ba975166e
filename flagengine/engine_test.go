package flagengine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naviplus-asp/openfeature-provider-go-aws-appconfig/flagengine"
	"github.com/naviplus-asp/openfeature-provider-go-aws-appconfig/flagengine/flags"
)

const configPayload = `{
	"enabled": true,
	"greeting": "hello",
	"limit": 10,
	"settings": {"ttl": 60},
	"settings_as_string": "{\"ttl\": 60}",
	"title": {
		"variants": [
			{"name": "english", "value": "Welcome"},
			{"name": "japanese", "value": "ようこそ"}
		],
		"defaultVariant": "english",
		"targetingRules": [
			{
				"conditions": [{"attribute": "language", "operator": "equals", "value": "ja"}],
				"variant": "japanese"
			}
		]
	},
	"ordered": {
		"variants": [
			{"name": "first", "value": "a"},
			{"name": "second", "value": "b"},
			{"name": "fallback", "value": "z"}
		],
		"defaultVariant": "fallback",
		"targetingRules": [
			{"conditions": [{"attribute": "plan", "operator": "equals", "value": "pro"}], "variant": "first"},
			{"conditions": [{"attribute": "plan", "operator": "equals", "value": "pro"}], "variant": "second"}
		]
	},
	"default_targeted": {
		"variants": [
			{"name": "standard", "value": "s"},
			{"name": "special", "value": "x"}
		],
		"defaultVariant": "standard",
		"targetingRules": [
			{"conditions": [{"attribute": "plan", "operator": "equals", "value": "basic"}], "variant": "standard"}
		]
	},
	"broken_default": {
		"variants": [{"name": "on", "value": true}],
		"defaultVariant": "missing"
	},
	"broken_rule_target": {
		"variants": [{"name": "on", "value": true}],
		"defaultVariant": "on",
		"targetingRules": [
			{"conditions": [{"attribute": "plan", "operator": "equals", "value": "pro"}], "variant": "ghost"}
		]
	},
	"malformed_variants": {"variants": 42}
}`

func parseConfig(t *testing.T) flags.Configuration {
	t.Helper()
	cfg, err := flags.ParseConfiguration([]byte(configPayload))
	require.NoError(t, err)
	return cfg
}

func TestEvaluateScalarFlags(t *testing.T) {
	cfg := parseConfig(t)

	res := flagengine.Evaluate(cfg, "enabled", flagengine.Boolean, nil)
	assert.Equal(t, true, res.Value)
	assert.Equal(t, "default", res.Variant)
	assert.Equal(t, flagengine.ReasonDefault, res.Reason)

	res = flagengine.Evaluate(cfg, "greeting", flagengine.String, nil)
	assert.Equal(t, "hello", res.Value)
	assert.Equal(t, flagengine.ReasonDefault, res.Reason)

	res = flagengine.Evaluate(cfg, "limit", flagengine.Number, nil)
	assert.Equal(t, float64(10), res.Value)

	res = flagengine.Evaluate(cfg, "settings", flagengine.Object, nil)
	assert.Equal(t, map[string]interface{}{"ttl": float64(60)}, res.Value)

	res = flagengine.Evaluate(cfg, "settings_as_string", flagengine.Object, nil)
	assert.Equal(t, map[string]interface{}{"ttl": float64(60)}, res.Value)
}

func TestEvaluateScalarCrossTypeCoercion(t *testing.T) {
	cfg := parseConfig(t)

	res := flagengine.Evaluate(cfg, "greeting", flagengine.Number, nil)
	assert.Equal(t, float64(0), res.Value)
	assert.Equal(t, flagengine.ReasonDefault, res.Reason)

	res = flagengine.Evaluate(cfg, "limit", flagengine.Boolean, nil)
	assert.Equal(t, true, res.Value)
}

func TestEvaluateMissingKey(t *testing.T) {
	cfg := parseConfig(t)

	res := flagengine.Evaluate(cfg, "nonexistent", flagengine.Boolean, nil)
	assert.Equal(t, false, res.Value)
	assert.Equal(t, "default", res.Variant)
	assert.Equal(t, flagengine.ReasonDefault, res.Reason)

	res = flagengine.Evaluate(cfg, "nonexistent", flagengine.String, nil)
	assert.Equal(t, "", res.Value)

	res = flagengine.Evaluate(cfg, "nonexistent", flagengine.Number, nil)
	assert.Equal(t, float64(0), res.Value)

	res = flagengine.Evaluate(cfg, "nonexistent", flagengine.Object, nil)
	assert.Equal(t, map[string]interface{}{}, res.Value)
}

func TestEvaluateTargetingMatch(t *testing.T) {
	cfg := parseConfig(t)
	attrs := map[string]interface{}{"language": "ja"}

	res := flagengine.Evaluate(cfg, "title", flagengine.String, attrs)
	assert.Equal(t, "ようこそ", res.Value)
	assert.Equal(t, "japanese", res.Variant)
	assert.Equal(t, flagengine.ReasonTargetingMatch, res.Reason)
}

func TestEvaluateNoRuleMatchFallsBackToDefault(t *testing.T) {
	cfg := parseConfig(t)
	attrs := map[string]interface{}{"language": "en"}

	res := flagengine.Evaluate(cfg, "title", flagengine.String, attrs)
	assert.Equal(t, "Welcome", res.Value)
	assert.Equal(t, "english", res.Variant)
	assert.Equal(t, flagengine.ReasonDefault, res.Reason)
}

func TestEvaluateEmptyAttributesUsesDefault(t *testing.T) {
	cfg := parseConfig(t)

	for _, attrs := range []map[string]interface{}{nil, {}} {
		res := flagengine.Evaluate(cfg, "title", flagengine.String, attrs)
		assert.Equal(t, "Welcome", res.Value)
		assert.Equal(t, "english", res.Variant)
		assert.Equal(t, flagengine.ReasonDefault, res.Reason)
	}
}

func TestEvaluateFirstMatchingRuleWins(t *testing.T) {
	cfg := parseConfig(t)
	attrs := map[string]interface{}{"plan": "pro"}

	res := flagengine.Evaluate(cfg, "ordered", flagengine.String, attrs)
	assert.Equal(t, "a", res.Value)
	assert.Equal(t, "first", res.Variant)
	assert.Equal(t, flagengine.ReasonTargetingMatch, res.Reason)
}

// A rule can target the variant that also happens to be the default; the
// reason comes from re-checking the rules, not from comparing names.
func TestEvaluateRuleTargetingDefaultVariant(t *testing.T) {
	cfg := parseConfig(t)

	res := flagengine.Evaluate(cfg, "default_targeted", flagengine.String, map[string]interface{}{"plan": "basic"})
	assert.Equal(t, "standard", res.Variant)
	assert.Equal(t, flagengine.ReasonTargetingMatch, res.Reason)

	res = flagengine.Evaluate(cfg, "default_targeted", flagengine.String, map[string]interface{}{"plan": "pro"})
	assert.Equal(t, "standard", res.Variant)
	assert.Equal(t, flagengine.ReasonDefault, res.Reason)
}

func TestEvaluateBrokenDefaultVariant(t *testing.T) {
	cfg := parseConfig(t)

	res := flagengine.Evaluate(cfg, "broken_default", flagengine.Boolean, nil)
	assert.Equal(t, false, res.Value)
	assert.Equal(t, "error", res.Variant)
	assert.Equal(t, flagengine.ReasonError, res.Reason)
	assert.Equal(t, flagengine.ErrorCodeGeneral, res.ErrorCode)
	assert.Contains(t, res.ErrorMessage, "no matching variant")
}

func TestEvaluateRuleTargetsUndeclaredVariant(t *testing.T) {
	cfg := parseConfig(t)

	res := flagengine.Evaluate(cfg, "broken_rule_target", flagengine.Boolean, map[string]interface{}{"plan": "pro"})
	assert.Equal(t, flagengine.ReasonError, res.Reason)
	assert.Equal(t, flagengine.ErrorCodeGeneral, res.ErrorCode)
}

func TestEvaluateMalformedDefinition(t *testing.T) {
	cfg := parseConfig(t)

	res := flagengine.Evaluate(cfg, "malformed_variants", flagengine.String, nil)
	assert.Equal(t, "", res.Value)
	assert.Equal(t, "error", res.Variant)
	assert.Equal(t, flagengine.ReasonError, res.Reason)
	assert.Equal(t, flagengine.ErrorCodeParseError, res.ErrorCode)
}
