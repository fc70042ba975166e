package flagengine

import "github.com/naviplus-asp/openfeature-provider-go-aws-appconfig/flagengine/coerce"

// ValueType is the output type requested by a resolution call.
type ValueType int

const (
	Boolean ValueType = iota
	String
	Number
	Object
)

// Reason explains how a resolution arrived at its value.
type Reason string

const (
	ReasonDefault        Reason = "DEFAULT"
	ReasonTargetingMatch Reason = "TARGETING_MATCH"
	ReasonError          Reason = "ERROR"
)

// ErrorCode classifies a failed resolution.
type ErrorCode string

const (
	ErrorCodeGeneral    ErrorCode = "GENERAL"
	ErrorCodeParseError ErrorCode = "PARSE_ERROR"
)

// Variant names used when no multi-variant selection took place.
const (
	DefaultVariantName = "default"
	ErrorVariantName   = "error"
)

// Resolution is the outcome of one flag resolution. Value always holds
// the requested type's Go representation, even on error.
type Resolution struct {
	Value        interface{}
	Variant      string
	Reason       Reason
	ErrorCode    ErrorCode
	ErrorMessage string
}

// ErrorResolution builds an ERROR outcome carrying the requested type's
// zero value.
func ErrorResolution(typ ValueType, code ErrorCode, message string) Resolution {
	return Resolution{
		Value:        coerceValue(typ, nil),
		Variant:      ErrorVariantName,
		Reason:       ReasonError,
		ErrorCode:    code,
		ErrorMessage: message,
	}
}

func coerceValue(typ ValueType, v interface{}) interface{} {
	switch typ {
	case Boolean:
		return coerce.Bool(v)
	case String:
		return coerce.String(v)
	case Number:
		return coerce.Number(v)
	case Object:
		return coerce.Object(v)
	}
	return nil
}
