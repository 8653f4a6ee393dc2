package fields

import (
	"errors"
	"testing"
)

func TestRegisterRejectsUndeclaredDefaultVariant(t *testing.T) {
	reg := NewRegistry()
	err := reg.Register(TypeConfig{
		Label: "Name",
		Value: FieldTypeName,
		VariantsConfig: &TypeVariantsConfig{
			DefaultVariant: "missing",
			Variants: map[string]VariantConfig{
				VariantFullName: {Label: "your_name"},
			},
		},
	})
	if err == nil {
		t.Fatalf("expected registration to fail")
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %T: %v", err, err)
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(TypeConfig{Label: "Short Text", Value: FieldTypeText}); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if err := reg.Register(TypeConfig{Label: "Short Text", Value: FieldTypeText}); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
}

func TestRegisterRejectsUnknownType(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(TypeConfig{Label: "Bogus", Value: FieldType("bogus")}); err == nil {
		t.Fatalf("expected unknown type to fail")
	}
}

func TestDefaultRegistryCoversEveryType(t *testing.T) {
	reg := DefaultRegistry()
	for _, ft := range FieldTypes() {
		cfg, ok := reg.Lookup(ft)
		if !ok {
			t.Fatalf("type %q missing from default registry", ft)
		}
		if cfg.Value != ft {
			t.Fatalf("config for %q carries value %q", ft, cfg.Value)
		}
		if vc := cfg.VariantsConfig; vc != nil {
			if _, declared := vc.Variants[vc.DefaultVariant]; !declared {
				t.Fatalf("type %q: default variant %q not declared", ft, vc.DefaultVariant)
			}
		}
	}
}

func TestDefaultRegistryNameConfig(t *testing.T) {
	cfg, ok := DefaultRegistry().Lookup(FieldTypeName)
	if !ok {
		t.Fatalf("name config missing")
	}
	if !cfg.IsTextType {
		t.Fatalf("name should be text-like")
	}
	vc := cfg.VariantsConfig
	if vc == nil {
		t.Fatalf("name config requires variants")
	}
	if vc.DefaultVariant != VariantFullName {
		t.Fatalf("default variant = %q, want %q", vc.DefaultVariant, VariantFullName)
	}
	seed := vc.DefaultValue
	if seed == nil {
		t.Fatalf("name config should carry a default value seed")
	}
	split, ok := seed.Variants[VariantFirstAndLastName]
	if !ok {
		t.Fatalf("seed missing %q variant", VariantFirstAndLastName)
	}
	if len(split.Fields) != 2 {
		t.Fatalf("split variant has %d sub-fields, want 2", len(split.Fields))
	}
	if split.Fields[0].Name != SubFieldFirstName || split.Fields[1].Name != SubFieldLastName {
		t.Fatalf("unexpected sub-field order: %q, %q", split.Fields[0].Name, split.Fields[1].Name)
	}
}

func TestLookupAbsentType(t *testing.T) {
	reg := NewRegistry()
	if _, ok := reg.Lookup(FieldTypeText); ok {
		t.Fatalf("empty registry should not resolve text")
	}
	if reg.IsTextType(FieldTypeText) {
		t.Fatalf("absent config must default to not text-like")
	}
}
