package flagengine

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/naviplus-asp/openfeature-provider-go-aws-appconfig/flagengine/flags"
	"github.com/naviplus-asp/openfeature-provider-go-aws-appconfig/flagengine/targeting"
)

// SelectVariant picks a variant for a multi-variant flag. Targeting rules
// are evaluated in declaration order and the first match wins; without
// attributes to evaluate against, or without any matching rule, the
// declared default variant is selected.
func SelectVariant(flag *flags.MultiVariantFlag, attributes map[string]interface{}) (*flags.Variant, error) {
	if len(attributes) > 0 {
		for i := range flag.TargetingRules {
			rule := &flag.TargetingRules[i]
			if !targeting.RuleMatches(rule, attributes) {
				continue
			}
			v := findVariant(flag.Variants, rule.Variant)
			if v == nil {
				return nil, fmt.Errorf("no matching variant: rule targets undeclared variant %q", rule.Variant)
			}
			return v, nil
		}
	}

	v := findVariant(flag.Variants, flag.DefaultVariant)
	if v == nil {
		return nil, fmt.Errorf("no matching variant: default variant %q is not declared", flag.DefaultVariant)
	}
	return v, nil
}

// ruleTargets reports whether some targeting rule names the given variant
// and matches the attributes. Used to compute the resolution reason; it is
// deliberately a re-check rather than a byproduct of selection.
func ruleTargets(flag *flags.MultiVariantFlag, name string, attributes map[string]interface{}) bool {
	for i := range flag.TargetingRules {
		rule := &flag.TargetingRules[i]
		if rule.Variant == name && targeting.RuleMatches(rule, attributes) {
			return true
		}
	}
	return false
}

func findVariant(variants []flags.Variant, name string) *flags.Variant {
	i := slices.IndexFunc(variants, func(v flags.Variant) bool { return v.Name == name })
	if i < 0 {
		return nil
	}
	return &variants[i]
}
