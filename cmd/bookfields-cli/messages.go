package main

import "github.com/goliatone/go-bookfields/pkg/validation"

// Minimal built-in catalogs. The engine only emits message ids; anything not
// translated here falls through as the id itself.
var catalogs = map[string]map[string]string{
	"en": {
		"Invalid string":         "This value must be text",
		"Invalid response shape": "This value has an unsupported shape",
		"error_required_field":   "This field is required",
		"email_validation_error": "That email address looks invalid",
	},
	"de": {
		"Invalid string":         "Dieser Wert muss Text sein",
		"Invalid response shape": "Dieser Wert hat eine ungültige Form",
		"error_required_field":   "Dieses Feld ist erforderlich",
		"email_validation_error": "Diese E-Mail-Adresse ist ungültig",
	},
}

func localizerFor(locale string) validation.Localizer {
	catalog, ok := catalogs[locale]
	if !ok {
		return validation.Keys
	}
	return func(key string) string {
		if msg, ok := catalog[key]; ok {
			return msg
		}
		return key
	}
}
