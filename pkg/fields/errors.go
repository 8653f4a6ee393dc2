package fields

import "fmt"

// ConfigError reports a malformed field or type configuration. It marks the
// schema itself as broken, as opposed to a per-response validation issue, and
// callers are expected to surface it immediately rather than collect it.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("fields: invalid configuration: %s", e.Reason)
	}
	return fmt.Sprintf("fields: invalid configuration for %q: %s", e.Field, e.Reason)
}

func configErrorf(field, format string, args ...any) *ConfigError {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
