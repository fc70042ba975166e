package appconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEvaluationContextCopiesAttributes(t *testing.T) {
	attrs := map[string]interface{}{"language": "ja"}
	ec := NewEvaluationContext("user-1", attrs)

	attrs["language"] = "en"
	assert.Equal(t, "ja", ec.attributes["language"])
	assert.Equal(t, "user-1", ec.TargetingKey())
}

func TestNewEvaluationContextNilAttributes(t *testing.T) {
	ec := NewEvaluationContext("user-1", nil)
	assert.NotNil(t, ec.attributes)
	assert.Empty(t, ec.attributes)
}
