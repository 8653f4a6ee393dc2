package fields

// ResolveVariant returns the variant a field is currently using: the field's
// own variant when set, otherwise the type config's default variant, otherwise
// the empty string for plain fields without variants.
func (r *Registry) ResolveVariant(f Field) string {
	if f.Variant != "" {
		return f.Variant
	}
	if cfg, ok := r.Lookup(f.Type); ok && cfg.VariantsConfig != nil {
		return cfg.VariantsConfig.DefaultVariant
	}
	return ""
}

// ResolveSubFields returns the ordered sub-fields making up the named variant
// of a field. A missing variants config or an undeclared variant name is a
// configuration error, not a validation issue.
func ResolveSubFields(f Field, variantName string) ([]SubField, error) {
	if f.VariantsConfig == nil {
		return nil, configErrorf(f.Name, "variants config is required for variant %q", variantName)
	}
	variant, ok := f.VariantsConfig.Variants[variantName]
	if !ok {
		return nil, configErrorf(f.Name, "variant %q is not declared in variants config", variantName)
	}
	return variant.Fields, nil
}

// ValidateDefinition checks the construction-time invariants of a field
// definition against the registry. Violations are schema bugs and surface as
// ConfigError values.
func ValidateDefinition(r *Registry, f Field) error {
	if f.Name == "" {
		return configErrorf("", "field name is required")
	}
	if !f.Type.Valid() {
		return configErrorf(f.Name, "unknown field type %q", f.Type)
	}
	if f.Editable != "" && !f.Editable.Valid() {
		return configErrorf(f.Name, "unknown editable class %q", f.Editable)
	}
	cfg, ok := r.Lookup(f.Type)
	if ok && cfg.NeedsOptions && len(f.Options) == 0 && f.GetOptionsAt == "" {
		return configErrorf(f.Name, "type %q requires options or an options pointer", f.Type)
	}
	if f.VariantsConfig != nil {
		if len(f.VariantsConfig.Variants) == 0 {
			return configErrorf(f.Name, "variants config declares no variants")
		}
		if ok && cfg.VariantsConfig != nil {
			if _, declared := f.VariantsConfig.Variants[cfg.VariantsConfig.DefaultVariant]; !declared {
				return configErrorf(f.Name, "variants config does not declare default variant %q", cfg.VariantsConfig.DefaultVariant)
			}
		}
	}
	return nil
}
