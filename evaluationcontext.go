package appconfig

// EvaluationContext is contextual data used during feature flag
// evaluation. The targeting key is an opaque subject identifier carried
// through resolution; targeting rules evaluate against the attributes.
type EvaluationContext struct {
	targetingKey string
	attributes   map[string]interface{}
}

// NewEvaluationContext creates a flag evaluation context for a subject.
func NewEvaluationContext(targetingKey string, attributes map[string]interface{}) (ec EvaluationContext) {
	ec.targetingKey = targetingKey
	// Store a copy of the attribute map
	ec.attributes = make(map[string]interface{}, len(attributes))
	for k, v := range attributes {
		ec.attributes[k] = v
	}
	return ec
}

// TargetingKey returns the subject identifier this context was created
// for.
func (ec EvaluationContext) TargetingKey() string {
	return ec.targetingKey
}
