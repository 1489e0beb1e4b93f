// Package jsonx is the JSON codec used by the command layer: a frozen
// json-iterator configuration with sorted map keys, extended so that
// non-finite float64 struct fields encode as null instead of failing.
// Marshal is compact; MarshalIndent takes its step from the indent string.
package jsonx

import (
	jsoniter "github.com/json-iterator/go"
)

var _jsonx = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

var (
	Marshal       = _jsonx.Marshal
	Unmarshal     = _jsonx.Unmarshal
	MarshalIndent = _jsonx.MarshalIndent
	NewEncoder    = _jsonx.NewEncoder
	NewDecoder    = _jsonx.NewDecoder
)

func init() {
	// NaN / ±Inf → null
	_jsonx.RegisterExtension(&finiteFloatExtension{})
}
