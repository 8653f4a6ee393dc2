package schemafile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-bookfields/pkg/fields"
)

const sampleYAML = `title: Booking questions
fields:
  - name: name
    type: name
    required: true
    variant: firstAndLastName
    variantsConfig:
      variants:
        fullName:
          fields:
            - name: fullName
              type: text
              required: true
        firstAndLastName:
          fields:
            - name: firstName
              type: text
              required: true
            - name: lastName
              type: text
  - name: location
    type: select
    options:
      - label: Office
        value: office
      - label: Remote
        value: remote
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadSchemaYAML(t *testing.T) {
	path := writeFile(t, "schema.yaml", sampleYAML)
	schema, err := LoadSchema(path, fields.DefaultRegistry())
	if err != nil {
		t.Fatalf("LoadSchema failed: %v", err)
	}
	if len(schema.Fields) != 2 {
		t.Fatalf("fields = %d, want 2", len(schema.Fields))
	}
	name := schema.Fields[0]
	if name.Type != fields.FieldTypeName || name.Variant != fields.VariantFirstAndLastName {
		t.Fatalf("name field decoded wrong: %+v", name)
	}
	if name.VariantsConfig == nil || len(name.VariantsConfig.Variants) != 2 {
		t.Fatalf("variants config decoded wrong: %+v", name.VariantsConfig)
	}
}

func TestLoadSchemaJSON(t *testing.T) {
	path := writeFile(t, "schema.json", `{"fields":[{"name":"email","type":"email","required":true}]}`)
	schema, err := LoadSchema(path, fields.DefaultRegistry())
	if err != nil {
		t.Fatalf("LoadSchema failed: %v", err)
	}
	if schema.Fields[0].Type != fields.FieldTypeEmail {
		t.Fatalf("unexpected field: %+v", schema.Fields[0])
	}
}

func TestLoadSchemaRejectsBrokenDefinitions(t *testing.T) {
	path := writeFile(t, "schema.json", `{"fields":[{"name":"where","type":"select"}]}`)
	if _, err := LoadSchema(path, fields.DefaultRegistry()); err == nil {
		t.Fatalf("select without options should fail at load time")
	}
}

func TestLoadSchemaRejectsDuplicates(t *testing.T) {
	path := writeFile(t, "schema.json", `{"fields":[{"name":"a","type":"text"},{"name":"a","type":"text"}]}`)
	if _, err := LoadSchema(path, fields.DefaultRegistry()); err == nil {
		t.Fatalf("duplicate field names should fail")
	}
}

func TestLoadResponses(t *testing.T) {
	path := writeFile(t, "responses.yaml", "name: John Smith\nlocation: office\n")
	responses, err := LoadResponses(path)
	if err != nil {
		t.Fatalf("LoadResponses failed: %v", err)
	}
	if responses["name"] != "John Smith" || responses["location"] != "office" {
		t.Fatalf("unexpected responses: %v", responses)
	}
}
