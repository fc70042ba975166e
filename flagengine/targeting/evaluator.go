package targeting

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/naviplus-asp/openfeature-provider-go-aws-appconfig/flagengine/coerce"
)

// RuleMatches reports whether every condition of the rule matches the
// context attributes.
func RuleMatches(rule *Rule, attributes map[string]interface{}) bool {
	for i := range rule.Conditions {
		if !ConditionMatches(&rule.Conditions[i], attributes) {
			return false
		}
	}
	return true
}

// ConditionMatches evaluates a single condition against the context
// attributes. A missing or null attribute never matches, whatever the
// operator. Unknown operators never match.
func ConditionMatches(cond *Condition, attributes map[string]interface{}) bool {
	value, ok := attributes[cond.Attribute]
	if !ok || value == nil {
		return false
	}

	switch cond.Operator {
	case Equals:
		return valuesEqual(value, cond.Value)
	case NotEquals:
		return !valuesEqual(value, cond.Value)
	case Contains:
		return strings.Contains(coerce.String(value), coerce.String(cond.Value))
	case NotContains:
		return !strings.Contains(coerce.String(value), coerce.String(cond.Value))
	case StartsWith:
		return strings.HasPrefix(coerce.String(value), coerce.String(cond.Value))
	case EndsWith:
		return strings.HasSuffix(coerce.String(value), coerce.String(cond.Value))
	case GreaterThan, GreaterThanOrEqual, LessThan, LessThanOrEqual:
		return compareNumeric(cond.Operator, value, cond.Value)
	}
	return false
}

// valuesEqual compares native values as-is. Numeric values of different
// widths compare numerically; everything else compares structurally.
func valuesEqual(a, b interface{}) bool {
	fa, aok := coerce.Numeric(a)
	fb, bok := coerce.Numeric(b)
	if aok && bok {
		return fa == fb
	}
	if aok != bok {
		return false
	}
	return reflect.DeepEqual(a, b)
}

func compareNumeric(op Operator, value, operand interface{}) bool {
	v, ok := parseFloat(value)
	if !ok {
		return false
	}
	o, ok := parseFloat(operand)
	if !ok {
		return false
	}
	switch op {
	case GreaterThan:
		return v > o
	case GreaterThanOrEqual:
		return v >= o
	case LessThan:
		return v < o
	case LessThanOrEqual:
		return v <= o
	}
	return false
}

// parseFloat reads v as a float64 for the ordering operators: native
// numeric values pass through, strings are parsed. Anything else fails.
func parseFloat(v interface{}) (float64, bool) {
	if f, ok := coerce.Numeric(v); ok {
		return f, true
	}
	if s, ok := v.(string); ok {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
