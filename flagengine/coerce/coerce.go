// Package coerce converts arbitrary decoded JSON values into the four
// flag output types. Flag authors store values either as native JSON types
// or as opaque strings, so every conversion is permissive: unrecognized
// input yields the type's zero value, never an error.
package coerce

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Bool converts v to a boolean. Strings are truthy only when they equal
// "true" or "1" case-insensitively; numbers are truthy when nonzero.
func Bool(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		s := strings.ToLower(t)
		return s == "true" || s == "1"
	default:
		if f, ok := Numeric(v); ok {
			return f != 0
		}
		return false
	}
}

// String converts v to its canonical string representation.
func String(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Number converts v to a float64. Numeric strings parse as a float when
// they contain a decimal point and as an integer otherwise, using
// locale-invariant parsing. Anything unparsable yields 0.
func Number(v interface{}) float64 {
	switch t := v.(type) {
	case nil:
		return 0
	case string:
		if strings.Contains(t, ".") {
			f, err := strconv.ParseFloat(t, 64)
			if err != nil {
				return 0
			}
			return f
		}
		i, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			return 0
		}
		return float64(i)
	default:
		if f, ok := Numeric(v); ok {
			return f
		}
		return 0
	}
}

// Object converts v to a map. Strings are parsed as JSON; a parse failure
// or any non-object value yields an empty map.
func Object(v interface{}) map[string]interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		return t
	case string:
		var m map[string]interface{}
		if err := json.Unmarshal([]byte(t), &m); err != nil || m == nil {
			return map[string]interface{}{}
		}
		return m
	default:
		return map[string]interface{}{}
	}
}

// Numeric reports whether v is a native numeric type, returning its
// float64 value. Numeric strings are not numeric values.
func Numeric(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	default:
		return 0, false
	}
}
