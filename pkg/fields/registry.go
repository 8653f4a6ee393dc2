package fields

import (
	"fmt"
	"sort"
	"sync"
)

// SubFieldConfig carries the per-variant defaults a sub-field inherits from
// its type config. CanChangeRequirability defaults to true when nil.
type SubFieldConfig struct {
	DefaultLabel           string `json:"defaultLabel,omitempty" yaml:"defaultLabel,omitempty"`
	DefaultPlaceholder     string `json:"defaultPlaceholder,omitempty" yaml:"defaultPlaceholder,omitempty"`
	CanChangeRequirability *bool  `json:"canChangeRequirability,omitempty" yaml:"canChangeRequirability,omitempty"`
}

// Requirable reports whether the sub-field's required flag may be edited.
func (c SubFieldConfig) Requirable() bool {
	return c.CanChangeRequirability == nil || *c.CanChangeRequirability
}

// VariantConfig describes one variant at the type level: a display label plus
// the defaults for each sub-field, keyed by sub-field name.
type VariantConfig struct {
	Label     string                    `json:"label" yaml:"label"`
	FieldsMap map[string]SubFieldConfig `json:"fieldsMap" yaml:"fieldsMap"`
}

// TypeVariantsConfig is the type-level variant metadata fields of that type
// inherit. DefaultValue is an optional seed structurally identical to the
// field-level VariantsConfig; observed usage nests a single level.
type TypeVariantsConfig struct {
	DefaultVariant string                   `json:"defaultVariant" yaml:"defaultVariant"`
	ToggleLabel    string                   `json:"toggleLabel,omitempty" yaml:"toggleLabel,omitempty"`
	Variants       map[string]VariantConfig `json:"variants" yaml:"variants"`
	DefaultValue   *VariantsConfig          `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`
}

// TypeConfig is the static per-type metadata shared by every field of a type.
type TypeConfig struct {
	Label          string              `json:"label" yaml:"label"`
	Value          FieldType           `json:"value" yaml:"value"`
	IsTextType     bool                `json:"isTextType,omitempty" yaml:"isTextType,omitempty"`
	SystemOnly     bool                `json:"systemOnly,omitempty" yaml:"systemOnly,omitempty"`
	NeedsOptions   bool                `json:"needsOptions,omitempty" yaml:"needsOptions,omitempty"`
	VariantsConfig *TypeVariantsConfig `json:"variantsConfig,omitempty" yaml:"variantsConfig,omitempty"`
}

// Registry stores type configs by field type. It is populated at startup and
// read-only afterwards; Lookup is safe for concurrent readers.
type Registry struct {
	mu      sync.RWMutex
	configs map[FieldType]TypeConfig
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{configs: make(map[FieldType]TypeConfig)}
}

// Register adds a type config keyed by its Value. Duplicate types, unknown
// types and variant configs whose default variant is not declared all return
// an error: these are programming errors and must surface at load time.
func (r *Registry) Register(cfg TypeConfig) error {
	if !cfg.Value.Valid() {
		return fmt.Errorf("fields: unknown field type %q", cfg.Value)
	}
	if vc := cfg.VariantsConfig; vc != nil {
		if vc.DefaultVariant == "" {
			return configErrorf(string(cfg.Value), "variants config requires a default variant")
		}
		if _, ok := vc.Variants[vc.DefaultVariant]; !ok {
			return configErrorf(string(cfg.Value), "default variant %q is not declared in variants", vc.DefaultVariant)
		}
		if seed := vc.DefaultValue; seed != nil {
			if _, ok := seed.Variants[vc.DefaultVariant]; !ok {
				return configErrorf(string(cfg.Value), "default value does not declare variant %q", vc.DefaultVariant)
			}
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.configs[cfg.Value]; exists {
		return fmt.Errorf("fields: type %q already registered", cfg.Value)
	}
	r.configs[cfg.Value] = cfg
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(cfg TypeConfig) {
	if err := r.Register(cfg); err != nil {
		panic(err)
	}
}

// Lookup retrieves the config for a field type. Absence means the type has no
// special-cased behavior: not text-like, no options, no variants.
func (r *Registry) Lookup(t FieldType) (TypeConfig, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cfg, ok := r.configs[t]
	return cfg, ok
}

// List returns the registered field types in sorted order.
func (r *Registry) List() []FieldType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]FieldType, 0, len(r.configs))
	for t := range r.configs {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// IsTextType reports whether t is a text-like type according to the registry.
func (r *Registry) IsTextType(t FieldType) bool {
	cfg, ok := r.Lookup(t)
	return ok && cfg.IsTextType
}

var (
	defaultRegistryOnce sync.Once
	defaultRegistry     *Registry
)

// DefaultRegistry returns the process-wide registry holding the built-in
// configs for all fourteen field types.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
		for _, cfg := range builtinConfigs() {
			defaultRegistry.MustRegister(cfg)
		}
	})
	return defaultRegistry
}
