package appconfig

import (
	"github.com/naviplus-asp/openfeature-provider-go-aws-appconfig/flagengine"
)

// ResolutionDetail describes how a resolution arrived at its value.
// ErrorCode and ErrorMessage are set only when Reason is ERROR.
type ResolutionDetail struct {
	Variant      string               `json:"variant"`
	Reason       flagengine.Reason    `json:"reason"`
	ErrorCode    flagengine.ErrorCode `json:"errorCode,omitempty"`
	ErrorMessage string               `json:"errorMessage,omitempty"`
}

// BoolResolutionDetail is the result of a boolean flag resolution.
type BoolResolutionDetail struct {
	Value bool `json:"value"`
	ResolutionDetail
}

// StringResolutionDetail is the result of a string flag resolution.
type StringResolutionDetail struct {
	Value string `json:"value"`
	ResolutionDetail
}

// NumberResolutionDetail is the result of a numeric flag resolution.
type NumberResolutionDetail struct {
	Value float64 `json:"value"`
	ResolutionDetail
}

// ObjectResolutionDetail is the result of a structured-object flag
// resolution.
type ObjectResolutionDetail struct {
	Value map[string]interface{} `json:"value"`
	ResolutionDetail
}

func detailOf(res flagengine.Resolution) ResolutionDetail {
	return ResolutionDetail{
		Variant:      res.Variant,
		Reason:       res.Reason,
		ErrorCode:    res.ErrorCode,
		ErrorMessage: res.ErrorMessage,
	}
}
