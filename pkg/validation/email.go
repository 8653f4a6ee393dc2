package validation

import (
	"strings"

	"github.com/goliatone/go-bookfields/pkg/fields"
	"github.com/goliatone/go-bookfields/pkg/response"
)

// isEmail applies the same permissive check the upstream forms use: one @,
// non-empty local part, and a dot in the domain. Deliverability is not this
// engine's business.
func isEmail(s string) bool {
	at := strings.IndexByte(s, '@')
	if at <= 0 || at != strings.LastIndexByte(s, '@') {
		return false
	}
	domain := s[at+1:]
	dot := strings.IndexByte(domain, '.')
	if dot <= 0 || dot == len(domain)-1 {
		return false
	}
	return !strings.ContainsAny(s, " \t\n")
}

func superRefineEmail(f fields.Field, _ *fields.Registry, v response.Value, partial bool, sink *IssueSink, m Localizer) error {
	text, ok := v.AsString()
	if !ok {
		sink.Add(m(msgInvalidString))
		return nil
	}
	text = strings.TrimSpace(text)
	if text == "" {
		if !partial && f.Required {
			sink.Add(m(msgRequired))
		}
		return nil
	}
	if !isEmail(text) {
		sink.Add(m(msgInvalidEmail))
	}
	return nil
}

// preprocessMultiemail lifts a single address into the slice shape so legacy
// single-value payloads validate and store uniformly.
func preprocessMultiemail(_ fields.Field, _ *fields.Registry, raw response.Value, _ bool) response.Value {
	if text, ok := raw.AsString(); ok {
		if strings.TrimSpace(text) == "" {
			return response.Strings(nil)
		}
		return response.Strings([]string{text})
	}
	return raw
}

func superRefineMultiemail(f fields.Field, _ *fields.Registry, v response.Value, partial bool, sink *IssueSink, m Localizer) error {
	emails, ok := v.AsStrings()
	if !ok {
		sink.Add(m(msgInvalidString))
		return nil
	}
	if len(emails) == 0 {
		if !partial && f.Required {
			sink.Add(m(msgRequired))
		}
		return nil
	}
	for _, email := range emails {
		if !isEmail(strings.TrimSpace(email)) {
			sink.Add(m(msgInvalidEmail))
		}
	}
	return nil
}
