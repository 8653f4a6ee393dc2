// Package schemafile reads form schemas and response payloads from disk. Both
// YAML and JSON are accepted; responses stay untyped until the validation
// gate shape-checks them.
package schemafile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-bookfields/pkg/fields"
)

// Schema is the on-disk form definition: an ordered field list.
type Schema struct {
	Title  string         `json:"title,omitempty" yaml:"title,omitempty"`
	Fields []fields.Field `json:"fields" yaml:"fields"`
}

// LoadSchema reads and decodes a schema file, then checks every field
// definition against the registry so broken schemas fail before any response
// is validated.
func LoadSchema(path string, reg *fields.Registry) (Schema, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Schema{}, fmt.Errorf("schemafile: read %s: %w", path, err)
	}
	var schema Schema
	if err := decode(path, raw, &schema); err != nil {
		return Schema{}, err
	}
	if len(schema.Fields) == 0 {
		return Schema{}, fmt.Errorf("schemafile: %s declares no fields", path)
	}
	seen := make(map[string]struct{}, len(schema.Fields))
	for _, f := range schema.Fields {
		if _, dup := seen[f.Name]; dup {
			return Schema{}, fmt.Errorf("schemafile: %s: duplicate field %q", path, f.Name)
		}
		seen[f.Name] = struct{}{}
		if err := fields.ValidateDefinition(reg, f); err != nil {
			return Schema{}, fmt.Errorf("schemafile: %s: %w", path, err)
		}
	}
	return schema, nil
}

// LoadResponses reads a field-name keyed response payload. Values stay as
// decoded; the validation gate owns shape checking.
func LoadResponses(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schemafile: read %s: %w", path, err)
	}
	var responses map[string]any
	if err := decode(path, raw, &responses); err != nil {
		return nil, err
	}
	return responses, nil
}

func decode(path string, raw []byte, out any) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("schemafile: parse %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("schemafile: parse %s: %w", path, err)
		}
	}
	return nil
}
