// Package argv splits a raw argument vector into marker-prefixed flags and
// positional arguments, and decodes typed values from matched flags.
// This file contains the flag value types and the Value tagged union
// returned by the extractor.
package argv

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// FlagType selects how a flag's raw value text is decoded.
// The set is closed; any other string is an unrecognized type and always
// yields the caller's default.
type FlagType string

const (
	// FlagBoolean decodes "true" as true and any other value as false.
	// A matched flag without a value is true.
	FlagBoolean FlagType = "boolean"
	// FlagNumber decodes a numeric literal into a float64
	FlagNumber FlagType = "number"
	// FlagString returns the raw value text verbatim
	FlagString FlagType = "string"
	// FlagJSON decodes a JSON document of any shape
	FlagJSON FlagType = "json"
)

// FlagTypes lists the recognized flag types in declaration order.
var FlagTypes = []FlagType{FlagBoolean, FlagNumber, FlagString, FlagJSON}

// Valid reports whether t is one of the recognized flag types.
func (t FlagType) Valid() bool {
	switch t {
	case FlagBoolean, FlagNumber, FlagString, FlagJSON:
		return true
	}
	return false
}

func (t FlagType) String() string {
	return string(t)
}

// ParseFlagType converts user input such as "Boolean" or "json" into a FlagType.
func ParseFlagType(s string) (FlagType, error) {
	t := FlagType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q (expected one of %s)", ErrUnknownType, s, joinTypes())
	}
	return t, nil
}

func joinTypes() string {
	names := make([]string, len(FlagTypes))
	for i, t := range FlagTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

// Value is a decoded flag value. Type is the discriminant and selects which
// of the payload fields is meaningful:
//
//	FlagBoolean -> Bool
//	FlagNumber  -> Number
//	FlagString  -> Str
//	FlagJSON    -> JSON (nil, bool, float64, string, []any or map[string]any)
//
// The zero Value has an empty Type and stands for "no value".
type Value struct {
	Type   FlagType
	Bool   bool
	Number float64
	Str    string
	JSON   any
}

// BoolValue wraps b as a boolean Value.
func BoolValue(b bool) Value {
	return Value{Type: FlagBoolean, Bool: b}
}

// NumberValue wraps n as a number Value.
func NumberValue(n float64) Value {
	return Value{Type: FlagNumber, Number: n}
}

// StringValue wraps s as a string Value.
func StringValue(s string) Value {
	return Value{Type: FlagString, Str: s}
}

// JSONValue wraps an already decoded JSON tree as a structured Value.
func JSONValue(v any) Value {
	return Value{Type: FlagJSON, JSON: v}
}

// IsZero reports whether v carries no value at all.
func (v Value) IsZero() bool {
	return v.Type == "" && !v.Bool && v.Number == 0 && v.Str == "" && v.JSON == nil
}

// Interface returns the payload selected by the discriminant, or nil for
// the zero Value and unrecognized types.
func (v Value) Interface() any {
	switch v.Type {
	case FlagBoolean:
		return v.Bool
	case FlagNumber:
		return v.Number
	case FlagString:
		return v.Str
	case FlagJSON:
		return v.JSON
	}
	return nil
}

// Portable returns Interface with infinite numbers, including those nested
// in structured values, replaced by the text "Infinity" or "-Infinity".
func (v Value) Portable() any {
	switch v.Type {
	case FlagNumber:
		if math.IsInf(v.Number, 0) {
			return formatNumber(v.Number)
		}
	case FlagJSON:
		return portableJSON(v.JSON)
	}
	return v.Interface()
}

// Equal compares the discriminant and the selected payload.
// Structured payloads are compared deeply.
func (v Value) Equal(other Value) bool {
	if v.Type != other.Type {
		return false
	}
	switch v.Type {
	case FlagBoolean:
		return v.Bool == other.Bool
	case FlagNumber:
		return v.Number == other.Number
	case FlagString:
		return v.Str == other.Str
	case FlagJSON:
		return reflect.DeepEqual(v.JSON, other.JSON)
	}
	return reflect.DeepEqual(v, other)
}

// String renders the payload as text; structured values are rendered as compact JSON.
func (v Value) String() string {
	switch v.Type {
	case FlagBoolean:
		return strconv.FormatBool(v.Bool)
	case FlagNumber:
		return formatNumber(v.Number)
	case FlagString:
		return v.Str
	case FlagJSON:
		data, err := json.Marshal(portableJSON(v.JSON))
		if err != nil {
			return fmt.Sprintf("%v", v.JSON)
		}
		return string(data)
	}
	return ""
}
