package fields

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func splitNameField() Field {
	cfg, _ := DefaultRegistry().Lookup(FieldTypeName)
	return Field{
		Name:           "name",
		Type:           FieldTypeName,
		Variant:        VariantFirstAndLastName,
		VariantsConfig: cfg.VariantsConfig.DefaultValue,
	}
}

func TestResolveVariantPrefersFieldSetting(t *testing.T) {
	reg := DefaultRegistry()
	f := splitNameField()
	if got := reg.ResolveVariant(f); got != VariantFirstAndLastName {
		t.Fatalf("ResolveVariant = %q, want %q", got, VariantFirstAndLastName)
	}
	f.Variant = ""
	if got := reg.ResolveVariant(f); got != VariantFullName {
		t.Fatalf("ResolveVariant fallback = %q, want type default %q", got, VariantFullName)
	}
	plain := Field{Name: "notes", Type: FieldTypeTextarea}
	if got := reg.ResolveVariant(plain); got != "" {
		t.Fatalf("plain field resolved variant %q, want none", got)
	}
}

func TestResolveSubFields(t *testing.T) {
	f := splitNameField()
	subs, err := ResolveSubFields(f, VariantFirstAndLastName)
	if err != nil {
		t.Fatalf("ResolveSubFields failed: %v", err)
	}
	want := []SubField{
		{Name: SubFieldFirstName, Type: FieldTypeText, Required: true},
		{Name: SubFieldLastName, Type: FieldTypeText},
	}
	if diff := cmp.Diff(want, subs); diff != "" {
		t.Fatalf("sub-fields mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveSubFieldsConfigErrors(t *testing.T) {
	f := splitNameField()
	if _, err := ResolveSubFields(f, "nickname"); err == nil {
		t.Fatalf("expected unknown variant to fail")
	}
	f.VariantsConfig = nil
	_, err := ResolveSubFields(f, VariantFullName)
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %T: %v", err, err)
	}
}

func TestValidateDefinition(t *testing.T) {
	reg := DefaultRegistry()
	cases := []struct {
		name    string
		field   Field
		wantErr bool
	}{
		{"valid text", Field{Name: "notes", Type: FieldTypeText}, false},
		{"missing name", Field{Type: FieldTypeText}, true},
		{"unknown type", Field{Name: "x", Type: FieldType("blob")}, true},
		{"bad editable", Field{Name: "x", Type: FieldTypeText, Editable: "nope"}, true},
		{"select without options", Field{Name: "x", Type: FieldTypeSelect}, true},
		{"select with pointer", Field{Name: "x", Type: FieldTypeSelect, GetOptionsAt: "locations"}, false},
		{"select with options", Field{Name: "x", Type: FieldTypeSelect, Options: []Option{{Label: "A", Value: "a"}}}, false},
		{"empty variants", Field{Name: "x", Type: FieldTypeName, VariantsConfig: &VariantsConfig{}}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateDefinition(reg, tc.field)
			if tc.wantErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestLabelFallbacks(t *testing.T) {
	f := Field{Name: "attendeeName", DefaultLabel: "your_name", DefaultPlaceholder: "example_name"}
	if got := f.LabelText(); got != "your_name" {
		t.Fatalf("LabelText = %q, want default label", got)
	}
	f.Label = "<b>Who</b> books?"
	if got := f.LabelText(); got != "Who books?" {
		t.Fatalf("LabelText = %q, want sanitized override", got)
	}
	if got := f.PlaceholderText(); got != "example_name" {
		t.Fatalf("PlaceholderText = %q, want default placeholder", got)
	}
	bare := Field{Name: "notes"}
	if got := bare.LabelText(); got != "notes" {
		t.Fatalf("LabelText = %q, want field name", got)
	}
	if got := bare.EditableOrDefault(); got != EditableUser {
		t.Fatalf("EditableOrDefault = %q, want %q", got, EditableUser)
	}
}
