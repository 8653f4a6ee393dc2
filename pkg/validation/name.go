package validation

import (
	"encoding/json"
	"strings"

	"github.com/goliatone/go-bookfields/pkg/fields"
	"github.com/goliatone/go-bookfields/pkg/response"
)

type splitName struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// preprocessName normalizes textual input for the split-name variant into a
// firstName/lastName record. A serialized object takes precedence; otherwise
// the first whitespace token becomes firstName and the rest lastName. Records
// and non-textual values pass through unchanged, which keeps the step
// idempotent.
func preprocessName(f fields.Field, reg *fields.Registry, raw response.Value, _ bool) response.Value {
	if reg.ResolveVariant(f) != fields.VariantFirstAndLastName {
		return raw
	}
	text, ok := raw.AsString()
	if !ok {
		return raw
	}

	var parsed splitName
	if err := json.Unmarshal([]byte(text), &parsed); err == nil && (parsed.FirstName != "" || parsed.LastName != "") {
		return response.Record(map[string]string{
			fields.SubFieldFirstName: parsed.FirstName,
			fields.SubFieldLastName:  parsed.LastName,
		})
	}

	tokens := strings.Fields(text)
	record := map[string]string{
		fields.SubFieldFirstName: "",
		fields.SubFieldLastName:  "",
	}
	if len(tokens) > 0 {
		record[fields.SubFieldFirstName] = tokens[0]
		record[fields.SubFieldLastName] = strings.Join(tokens[1:], " ")
	}
	return response.Record(record)
}

// superRefineName validates a name response against the field's active
// variant. Missing variant metadata and non-text sub-field types are schema
// bugs and return a ConfigError instead of emitting issues.
func superRefineName(f fields.Field, reg *fields.Registry, v response.Value, partial bool, sink *IssueSink, m Localizer) error {
	if f.VariantsConfig == nil {
		return &fields.ConfigError{Field: f.Name, Reason: "variants config is required for name fields"}
	}
	variant := reg.ResolveVariant(f)
	if variant == "" {
		return &fields.ConfigError{Field: f.Name, Reason: "variant is required for name fields"}
	}
	subFields, err := fields.ResolveSubFields(f, variant)
	if err != nil {
		return err
	}

	if len(subFields) == 1 {
		sub := subFields[0]
		if !reg.IsTextType(sub.Type) {
			return &fields.ConfigError{Field: f.Name, Reason: "sub-field type " + string(sub.Type) + " is not supported in variant validation"}
		}
		if _, ok := v.AsString(); !ok {
			sink.Add(m(msgInvalidString))
		}
		return nil
	}

	record, isRecord := v.AsRecord()
	for _, sub := range subFields {
		if !reg.IsTextType(sub.Type) {
			return &fields.ConfigError{Field: f.Name, Reason: "sub-field type " + string(sub.Type) + " is not supported in variant validation"}
		}
		if sub.Required && !isRecord {
			// Whole response has the wrong shape; the required sub-field
			// fails its string check and gets no further emptiness check.
			sink.Add(m(msgInvalidString))
			continue
		}
		if !isRecord {
			continue
		}
		if !partial && sub.Required && strings.TrimSpace(record[sub.Name]) == "" {
			sink.Add(m(msgRequired))
		}
	}
	return nil
}
