package fields

// FieldType enumerates the closed set of booking-question field kinds.
type FieldType string

const (
	FieldTypeName        FieldType = "name"
	FieldTypeText        FieldType = "text"
	FieldTypeTextarea    FieldType = "textarea"
	FieldTypeNumber      FieldType = "number"
	FieldTypeEmail       FieldType = "email"
	FieldTypePhone       FieldType = "phone"
	FieldTypeAddress     FieldType = "address"
	FieldTypeMultiemail  FieldType = "multiemail"
	FieldTypeSelect      FieldType = "select"
	FieldTypeMultiselect FieldType = "multiselect"
	FieldTypeCheckbox    FieldType = "checkbox"
	FieldTypeRadio       FieldType = "radio"
	FieldTypeRadioInput  FieldType = "radioInput"
	FieldTypeBoolean     FieldType = "boolean"
)

// FieldTypes lists every known field type in declaration order.
func FieldTypes() []FieldType {
	return []FieldType{
		FieldTypeName, FieldTypeText, FieldTypeTextarea, FieldTypeNumber,
		FieldTypeEmail, FieldTypePhone, FieldTypeAddress, FieldTypeMultiemail,
		FieldTypeSelect, FieldTypeMultiselect, FieldTypeCheckbox,
		FieldTypeRadio, FieldTypeRadioInput, FieldTypeBoolean,
	}
}

// Valid reports whether t is one of the known field types.
func (t FieldType) Valid() bool {
	switch t {
	case FieldTypeName, FieldTypeText, FieldTypeTextarea, FieldTypeNumber,
		FieldTypeEmail, FieldTypePhone, FieldTypeAddress, FieldTypeMultiemail,
		FieldTypeSelect, FieldTypeMultiselect, FieldTypeCheckbox,
		FieldTypeRadio, FieldTypeRadioInput, FieldTypeBoolean:
		return true
	}
	return false
}

// Editable tags the mutability policy of a field in editing UIs. The engine
// carries the tag without enforcing it.
type Editable string

const (
	EditableSystem            Editable = "system"
	EditableSystemButOptional Editable = "system-but-optional"
	EditableUser              Editable = "user"
	EditableUserReadonly      Editable = "user-readonly"
)

// Valid reports whether e is one of the four editability classes.
func (e Editable) Valid() bool {
	switch e {
	case EditableSystem, EditableSystemButOptional, EditableUser, EditableUserReadonly:
		return true
	}
	return false
}

// Option is a selectable choice for option-backed field types.
type Option struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// OptionsInput describes the follow-up input a radioInput field shows when a
// given option is selected. Type is restricted to address, phone or text.
type OptionsInput struct {
	Type        FieldType `json:"type" yaml:"type"`
	Required    bool      `json:"required,omitempty" yaml:"required,omitempty"`
	Placeholder string    `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
}

// View scopes a field to a named view. Opaque to the engine.
type View struct {
	ID          string `json:"id" yaml:"id"`
	Label       string `json:"label" yaml:"label"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Source records where a field came from, for example the workflow that
// required it. FieldRequired feeds the caller's aggregation of the effective
// required flag; the engine does not aggregate.
type Source struct {
	ID            string `json:"id" yaml:"id"`
	Type          string `json:"type" yaml:"type"`
	Label         string `json:"label" yaml:"label"`
	EditURL       string `json:"editUrl,omitempty" yaml:"editUrl,omitempty"`
	FieldRequired *bool  `json:"fieldRequired,omitempty" yaml:"fieldRequired,omitempty"`
}

// SubField is one constituent of a variant layout. It is a restricted Field:
// default labels, placeholders and options come from the type config's
// per-variant fields map instead.
type SubField struct {
	Name        string    `json:"name" yaml:"name"`
	Type        FieldType `json:"type" yaml:"type"`
	Label       string    `json:"label,omitempty" yaml:"label,omitempty"`
	Placeholder string    `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Required    bool      `json:"required,omitempty" yaml:"required,omitempty"`
}

// Variant is one alternative layout for a logical field.
type Variant struct {
	Fields []SubField `json:"fields" yaml:"fields"`
}

// VariantsConfig maps variant names to their layouts.
type VariantsConfig struct {
	Variants map[string]Variant `json:"variants" yaml:"variants"`
}

// Field describes one booking question. Name is the stable identifier; Label
// and Placeholder are user overrides that fall back to the defaults supplied
// by the type config.
type Field struct {
	Name                  string                  `json:"name" yaml:"name"`
	Type                  FieldType               `json:"type" yaml:"type"`
	Label                 string                  `json:"label,omitempty" yaml:"label,omitempty"`
	Placeholder           string                  `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	DefaultLabel          string                  `json:"defaultLabel,omitempty" yaml:"defaultLabel,omitempty"`
	DefaultPlaceholder    string                  `json:"defaultPlaceholder,omitempty" yaml:"defaultPlaceholder,omitempty"`
	Required              bool                    `json:"required" yaml:"required"`
	Options               []Option                `json:"options,omitempty" yaml:"options,omitempty"`
	GetOptionsAt          string                  `json:"getOptionsAt,omitempty" yaml:"getOptionsAt,omitempty"`
	OptionsInputs         map[string]OptionsInput `json:"optionsInputs,omitempty" yaml:"optionsInputs,omitempty"`
	Variant               string                  `json:"variant,omitempty" yaml:"variant,omitempty"`
	VariantsConfig        *VariantsConfig         `json:"variantsConfig,omitempty" yaml:"variantsConfig,omitempty"`
	Views                 []View                  `json:"views,omitempty" yaml:"views,omitempty"`
	HideWhenJustOneOption bool                    `json:"hideWhenJustOneOption,omitempty" yaml:"hideWhenJustOneOption,omitempty"`
	Hidden                *bool                   `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	Editable              Editable                `json:"editable,omitempty" yaml:"editable,omitempty"`
	Sources               []Source                `json:"sources,omitempty" yaml:"sources,omitempty"`
}

// EditableOrDefault returns the field's editability class, defaulting to
// EditableUser when unset.
func (f Field) EditableOrDefault() Editable {
	if f.Editable == "" {
		return EditableUser
	}
	return f.Editable
}

// LabelText returns the user label when set, falling back to the default
// label and finally the field name. Markup is stripped from user overrides.
func (f Field) LabelText() string {
	if f.Label != "" {
		return SanitizeText(f.Label)
	}
	if f.DefaultLabel != "" {
		return f.DefaultLabel
	}
	return f.Name
}

// PlaceholderText returns the user placeholder when set, falling back to the
// default placeholder. Markup is stripped from user overrides.
func (f Field) PlaceholderText() string {
	if f.Placeholder != "" {
		return SanitizeText(f.Placeholder)
	}
	return f.DefaultPlaceholder
}
