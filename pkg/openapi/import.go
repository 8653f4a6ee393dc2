// Package openapi derives booking-question field definitions from an OpenAPI
// 3 document, so forms declared once for an HTTP API can be reused as a field
// set. Each request-body property becomes one field; types and formats map to
// the closed field-type set and enums become inline options.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-bookfields/pkg/fields"
)

// ImportOptions configures the import.
type ImportOptions struct {
	// Labeler turns a property name into a display label. Defaults to
	// title-casing camelCase and snake_case names.
	Labeler func(string) string
}

// ImportOperation loads an OpenAPI document and converts the JSON request
// body of the named operation into an ordered field set. Properties are
// emitted in sorted order since OpenAPI objects carry none.
func ImportOperation(ctx context.Context, raw []byte, operationID string, opts ImportOptions) ([]fields.Field, error) {
	if len(raw) == 0 {
		return nil, errors.New("openapi import: document payload is empty")
	}
	if operationID == "" {
		return nil, errors.New("openapi import: operation id is required")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi import: load document: %w", err)
	}

	operation := findOperation(spec, operationID)
	if operation == nil {
		return nil, fmt.Errorf("openapi import: operation %q not found", operationID)
	}

	schema := requestSchema(operation.RequestBody)
	if schema == nil {
		return nil, fmt.Errorf("openapi import: operation %q has no JSON request body", operationID)
	}

	labeler := opts.Labeler
	if labeler == nil {
		labeler = DefaultLabeler
	}

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]fields.Field, 0, len(names))
	for _, name := range names {
		property := schema.Properties[name]
		if property == nil || property.Value == nil {
			continue
		}
		field, ok := fieldFromProperty(name, property.Value, required[name], labeler)
		if !ok {
			continue
		}
		out = append(out, field)
	}
	return out, nil
}

func findOperation(spec *openapi3.T, operationID string) *openapi3.Operation {
	if spec.Paths == nil {
		return nil
	}
	for _, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for _, op := range item.Operations() {
			if op != nil && op.OperationID == operationID {
				return op
			}
		}
	}
	return nil
}

func requestSchema(body *openapi3.RequestBodyRef) *openapi3.Schema {
	if body == nil || body.Value == nil {
		return nil
	}
	mt, ok := body.Value.Content["application/json"]
	if !ok || mt.Schema == nil || mt.Schema.Value == nil {
		return nil
	}
	return mt.Schema.Value
}

func fieldFromProperty(name string, schema *openapi3.Schema, required bool, labeler func(string) string) (fields.Field, bool) {
	field := fields.Field{
		Name:     name,
		Required: required,
		Label:    labeler(name),
		Editable: fields.EditableUser,
	}
	if schema.Title != "" {
		field.Label = schema.Title
	}

	switch schemaType(schema) {
	case "boolean":
		field.Type = fields.FieldTypeBoolean
	case "array":
		field.Type = fields.FieldTypeMultiselect
		if schema.Items != nil && schema.Items.Value != nil {
			field.Options = optionsFromEnum(schema.Items.Value.Enum)
		}
		if len(field.Options) == 0 {
			// Free-form string arrays only make sense as email lists here.
			if schema.Items != nil && schema.Items.Value != nil && schema.Items.Value.Format == "email" {
				field.Type = fields.FieldTypeMultiemail
			} else {
				return fields.Field{}, false
			}
		}
	case "number", "integer":
		field.Type = fields.FieldTypeNumber
	case "string":
		if options := optionsFromEnum(schema.Enum); len(options) > 0 {
			field.Type = fields.FieldTypeSelect
			field.Options = options
			break
		}
		switch schema.Format {
		case "email":
			field.Type = fields.FieldTypeEmail
		case "phone", "tel":
			field.Type = fields.FieldTypePhone
		default:
			field.Type = fields.FieldTypeText
			if schema.MaxLength != nil && *schema.MaxLength > 280 {
				field.Type = fields.FieldTypeTextarea
			}
		}
	default:
		return fields.Field{}, false
	}
	return field, true
}

func schemaType(schema *openapi3.Schema) string {
	if schema.Type == nil {
		return ""
	}
	values := schema.Type.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func optionsFromEnum(enum []any) []fields.Option {
	if len(enum) == 0 {
		return nil
	}
	options := make([]fields.Option, 0, len(enum))
	for _, entry := range enum {
		value, ok := entry.(string)
		if !ok {
			value = fmt.Sprint(entry)
		}
		options = append(options, fields.Option{Label: value, Value: value})
	}
	return options
}

// DefaultLabeler title-cases camelCase and snake_case property names:
// "firstName" and "first_name" both become "First Name".
func DefaultLabeler(name string) string {
	if name == "" {
		return ""
	}
	var words []string
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}
	for _, r := range name {
		switch {
		case r == '_' || r == '-' || r == ' ':
			flush()
		case unicode.IsUpper(r):
			flush()
			current.WriteRune(unicode.ToLower(r))
		default:
			current.WriteRune(r)
		}
	}
	flush()
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
