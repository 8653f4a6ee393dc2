// Package response models the legal shapes a stored or prefilled response
// value may take: plain string, boolean, string slice, selected-option pair,
// or a string-keyed record for multi-sub-field variants. Parse is the outer
// structural gate applied before any per-type validation runs.
package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// ErrShape reports a value matching none of the union's alternatives.
var ErrShape = errors.New("response: value matches no supported shape")

// Kind tags the active alternative of a Value.
type Kind int

const (
	KindInvalid Kind = iota
	KindString
	KindBool
	KindStrings
	KindOption
	KindRecord
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindStrings:
		return "strings"
	case KindOption:
		return "option"
	case KindRecord:
		return "record"
	default:
		return "invalid"
	}
}

// Option pairs a selected option value with the free-form input it triggered,
// as produced by radioInput fields.
type Option struct {
	OptionValue string `json:"optionValue"`
	Value       string `json:"value"`
}

// Value is the tagged union of response shapes. The zero Value is invalid.
type Value struct {
	kind    Kind
	str     string
	boolean bool
	strs    []string
	option  Option
	record  map[string]string
}

// String wraps a plain string response.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Bool wraps a boolean response.
func Bool(b bool) Value { return Value{kind: KindBool, boolean: b} }

// Strings wraps a string-slice response.
func Strings(ss []string) Value { return Value{kind: KindStrings, strs: ss} }

// FromOption wraps a selected-option response.
func FromOption(o Option) Value { return Value{kind: KindOption, option: o} }

// Record wraps a sub-field-name keyed response.
func Record(m map[string]string) Value { return Value{kind: KindRecord, record: m} }

// Kind returns the active alternative.
func (v Value) Kind() Kind { return v.kind }

// AsString returns the string alternative.
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == KindString
}

// AsBool returns the boolean alternative.
func (v Value) AsBool() (bool, bool) {
	return v.boolean, v.kind == KindBool
}

// AsStrings returns the string-slice alternative.
func (v Value) AsStrings() ([]string, bool) {
	return v.strs, v.kind == KindStrings
}

// AsOption returns the selected-option alternative.
func (v Value) AsOption() (Option, bool) {
	return v.option, v.kind == KindOption
}

// AsRecord returns the record alternative.
func (v Value) AsRecord() (map[string]string, bool) {
	return v.record, v.kind == KindRecord
}

// Empty reports whether the value carries no usable content for requiredness
// checks. Booleans are never empty.
func (v Value) Empty() bool {
	switch v.kind {
	case KindString:
		return v.str == ""
	case KindStrings:
		return len(v.strs) == 0
	case KindOption:
		return v.option.OptionValue == "" && v.option.Value == ""
	case KindRecord:
		return len(v.record) == 0
	case KindBool:
		return false
	default:
		return true
	}
}

// Interface returns the canonical Go representation of the value.
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindBool:
		return v.boolean
	case KindStrings:
		return v.strs
	case KindOption:
		return v.option
	case KindRecord:
		return v.record
	default:
		return nil
	}
}

// Parse shape-checks an arbitrary decoded value against the union. It accepts
// the output of encoding/json and yaml decoders (map[string]any, []any) as
// well as already-typed Go values, and fails with ErrShape otherwise.
func Parse(raw any) (Value, error) {
	switch val := raw.(type) {
	case Value:
		if val.kind == KindInvalid {
			return Value{}, fmt.Errorf("%w: zero value", ErrShape)
		}
		return val, nil
	case string:
		return String(val), nil
	case bool:
		return Bool(val), nil
	case []string:
		return Strings(val), nil
	case []any:
		out := make([]string, len(val))
		for i, item := range val {
			s, ok := item.(string)
			if !ok {
				return Value{}, fmt.Errorf("%w: array element %d is %T, want string", ErrShape, i, item)
			}
			out[i] = s
		}
		return Strings(out), nil
	case map[string]string:
		return Record(copyRecord(val)), nil
	case map[string]any:
		return parseObject(val)
	case json.RawMessage:
		return ParseJSON(val)
	default:
		return Value{}, fmt.Errorf("%w: unsupported type %T", ErrShape, raw)
	}
}

// ParseJSON decodes a raw JSON payload and shape-checks it.
func ParseJSON(raw []byte) (Value, error) {
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return Value{}, fmt.Errorf("response: decode: %w", err)
	}
	return Parse(decoded)
}

// parseObject disambiguates the two object-shaped alternatives: an object
// holding exactly optionValue and value is the selected-option pair, anything
// else must be a flat string record.
func parseObject(obj map[string]any) (Value, error) {
	if len(obj) == 2 {
		ov, hasOV := obj["optionValue"].(string)
		val, hasVal := obj["value"].(string)
		if hasOV && hasVal {
			return FromOption(Option{OptionValue: ov, Value: val}), nil
		}
	}
	record := make(map[string]string, len(obj))
	for key, item := range obj {
		s, ok := item.(string)
		if !ok {
			return Value{}, fmt.Errorf("%w: record key %q holds %T, want string", ErrShape, key, item)
		}
		record[key] = s
	}
	return Record(record), nil
}

func copyRecord(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// MarshalJSON encodes the active alternative directly, without a wrapper.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == KindInvalid {
		return nil, fmt.Errorf("response: cannot marshal zero value")
	}
	return json.Marshal(v.Interface())
}

// UnmarshalJSON decodes any of the union's alternatives.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := ParseJSON(data)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// RecordKeys returns the sorted keys of a record value, or nil for other
// kinds. Useful for deterministic reporting.
func (v Value) RecordKeys() []string {
	if v.kind != KindRecord || len(v.record) == 0 {
		return nil
	}
	keys := make([]string, 0, len(v.record))
	for k := range v.record {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
