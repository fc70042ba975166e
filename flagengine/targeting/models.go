package targeting

// Condition compares a single context attribute against an operand.
type Condition struct {
	Attribute string      `json:"attribute"`
	Operator  Operator    `json:"operator"`
	Value     interface{} `json:"value"`
}

// Rule maps a set of conditions to a variant name. All conditions must
// match; a rule with no conditions matches unconditionally.
type Rule struct {
	Conditions []Condition `json:"conditions"`
	Variant    string      `json:"variant"`
}
