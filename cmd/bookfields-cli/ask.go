package main

import (
	"github.com/AlecAivazis/survey/v2"

	"github.com/goliatone/go-bookfields/pkg/fields"
)

// askResponses walks the schema and prompts for each visible field, returning
// a raw response map shaped like a stored payload.
func askResponses(schema []fields.Field, reg *fields.Registry) (map[string]any, error) {
	responses := make(map[string]any, len(schema))
	for _, f := range schema {
		if f.Hidden != nil && *f.Hidden {
			continue
		}
		answer, err := askField(f, reg)
		if err != nil {
			return nil, err
		}
		responses[f.Name] = answer
	}
	return responses, nil
}

func askField(f fields.Field, reg *fields.Registry) (any, error) {
	switch f.Type {
	case fields.FieldTypeBoolean:
		var out bool
		prompt := &survey.Confirm{Message: f.LabelText()}
		if err := survey.AskOne(prompt, &out); err != nil {
			return nil, err
		}
		return out, nil
	case fields.FieldTypeSelect, fields.FieldTypeRadio:
		var out string
		prompt := &survey.Select{Message: f.LabelText(), Options: optionValues(f)}
		if err := survey.AskOne(prompt, &out); err != nil {
			return nil, err
		}
		return out, nil
	case fields.FieldTypeMultiselect, fields.FieldTypeCheckbox:
		var out []string
		prompt := &survey.MultiSelect{Message: f.LabelText(), Options: optionValues(f)}
		if err := survey.AskOne(prompt, &out); err != nil {
			return nil, err
		}
		return out, nil
	case fields.FieldTypeName:
		return askName(f, reg)
	default:
		var out string
		prompt := &survey.Input{Message: f.LabelText(), Default: f.PlaceholderText()}
		if err := survey.AskOne(prompt, &out); err != nil {
			return nil, err
		}
		return out, nil
	}
}

// askName prompts per sub-field for the active variant so the answer already
// has the record shape for multi-sub-field variants.
func askName(f fields.Field, reg *fields.Registry) (any, error) {
	variant := reg.ResolveVariant(f)
	subs, err := fields.ResolveSubFields(f, variant)
	if err != nil {
		return nil, err
	}
	if len(subs) == 1 {
		var out string
		prompt := &survey.Input{Message: f.LabelText()}
		if err := survey.AskOne(prompt, &out); err != nil {
			return nil, err
		}
		return out, nil
	}
	record := make(map[string]any, len(subs))
	for _, sub := range subs {
		var out string
		label := sub.Label
		if label == "" {
			label = sub.Name
		}
		prompt := &survey.Input{Message: label, Default: sub.Placeholder}
		if err := survey.AskOne(prompt, &out); err != nil {
			return nil, err
		}
		record[sub.Name] = out
	}
	return record, nil
}

func optionValues(f fields.Field) []string {
	values := make([]string, 0, len(f.Options))
	for _, opt := range f.Options {
		values = append(values, opt.Value)
	}
	return values
}
