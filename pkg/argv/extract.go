package argv

import (
	"errors"
	"fmt"
	"strings"
)

// Decode failures reported by Decode. ParseFlagVal never surfaces them;
// it falls back to the caller's default instead.
var (
	ErrNoValue       = errors.New("flag has no value")
	ErrUnknownType   = errors.New("unknown flag type")
	ErrInvalidNumber = errors.New("invalid number")
	ErrInvalidJSON   = errors.New("invalid json")
)

// valueSeparator splits a flag token into name and value. Only the first
// occurrence counts.
const valueSeparator = "="

// Lookup returns the first flag that starts with findPrefix.
// The prefix is compared literally, so "-b" also selects "-bool".
func Lookup(flags []string, findPrefix string) (string, bool) {
	for _, flag := range flags {
		if strings.HasPrefix(flag, findPrefix) {
			return flag, true
		}
	}
	return "", false
}

// SplitFlag splits a flag token at its first "=". hasValue is false when
// there is no "=" or nothing follows it.
func SplitFlag(token string) (name, raw string, hasValue bool) {
	name, raw, _ = strings.Cut(token, valueSeparator)
	return name, raw, raw != ""
}

// Decode converts raw value text into a Value of type t.
// An empty raw string is ErrNoValue for every type.
func Decode(t FlagType, raw string) (Value, error) {
	if !t.Valid() {
		return Value{}, fmt.Errorf("%w: %q", ErrUnknownType, string(t))
	}
	if raw == "" {
		return Value{}, ErrNoValue
	}

	switch t {
	case FlagBoolean:
		return BoolValue(raw == "true"), nil

	case FlagNumber:
		n, err := parseNumber(raw)
		if err != nil {
			return Value{}, err
		}
		return NumberValue(n), nil

	case FlagString:
		return StringValue(raw), nil

	default:
		tree, err := decodeJSON(raw)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		return JSONValue(tree), nil
	}
}

// ParseFlagVal finds the first flag starting with findPrefix and decodes its
// value as type t. It returns def when no flag matches, when the flag has no
// value (except for booleans, where presence alone means true), when decoding
// fails, and when t is not a recognized type.
//
// The type of def is not checked against t.
func ParseFlagVal(flags []string, findPrefix string, t FlagType, def Value) Value {
	flag, ok := Lookup(flags, findPrefix)
	if !ok || !t.Valid() {
		return def
	}

	_, raw, hasValue := SplitFlag(flag)
	if !hasValue {
		if t == FlagBoolean {
			return BoolValue(true)
		}
		return def
	}

	v, err := Decode(t, raw)
	if err != nil {
		return def
	}
	return v
}
