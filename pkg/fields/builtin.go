package fields

// Variant and sub-field names used by the built-in name type.
const (
	VariantFullName         = "fullName"
	VariantFirstAndLastName = "firstAndLastName"

	SubFieldFullName  = "fullName"
	SubFieldFirstName = "firstName"
	SubFieldLastName  = "lastName"
)

func boolPtr(v bool) *bool { return &v }

// builtinConfigs returns the static config for every field type. Labels,
// placeholders and toggle labels are message ids resolved by the caller's
// localizer, never final strings.
func builtinConfigs() []TypeConfig {
	return []TypeConfig{
		{
			Label:      "Name",
			Value:      FieldTypeName,
			IsTextType: true,
			SystemOnly: true,
			VariantsConfig: &TypeVariantsConfig{
				DefaultVariant: VariantFullName,
				ToggleLabel:    "split_full_name",
				Variants: map[string]VariantConfig{
					VariantFullName: {
						Label: "your_name",
						FieldsMap: map[string]SubFieldConfig{
							SubFieldFullName: {
								DefaultLabel:           "your_name",
								DefaultPlaceholder:     "example_name",
								CanChangeRequirability: boolPtr(false),
							},
						},
					},
					VariantFirstAndLastName: {
						Label: "first_last_name",
						FieldsMap: map[string]SubFieldConfig{
							SubFieldFirstName: {
								DefaultLabel:           "first_name",
								CanChangeRequirability: boolPtr(false),
							},
							SubFieldLastName: {
								DefaultLabel:           "last_name",
								CanChangeRequirability: boolPtr(true),
							},
						},
					},
				},
				DefaultValue: &VariantsConfig{
					Variants: map[string]Variant{
						VariantFullName: {
							Fields: []SubField{
								{Name: SubFieldFullName, Type: FieldTypeText, Required: true},
							},
						},
						VariantFirstAndLastName: {
							Fields: []SubField{
								{Name: SubFieldFirstName, Type: FieldTypeText, Required: true},
								{Name: SubFieldLastName, Type: FieldTypeText},
							},
						},
					},
				},
			},
		},
		{Label: "Short Text", Value: FieldTypeText, IsTextType: true},
		{Label: "Long Text", Value: FieldTypeTextarea, IsTextType: true},
		{Label: "Number", Value: FieldTypeNumber, IsTextType: true},
		{Label: "Email", Value: FieldTypeEmail, IsTextType: true},
		{Label: "Phone", Value: FieldTypePhone, IsTextType: true},
		{Label: "Address", Value: FieldTypeAddress, IsTextType: true},
		{Label: "Multiple Emails", Value: FieldTypeMultiemail, IsTextType: true},
		{Label: "Select", Value: FieldTypeSelect, NeedsOptions: true},
		{Label: "MultiSelect", Value: FieldTypeMultiselect, NeedsOptions: true},
		{Label: "Checkbox Group", Value: FieldTypeCheckbox, NeedsOptions: true},
		{Label: "Radio Group", Value: FieldTypeRadio, NeedsOptions: true},
		{Label: "Radio Group with Input", Value: FieldTypeRadioInput, NeedsOptions: true, SystemOnly: true},
		{Label: "Checkbox", Value: FieldTypeBoolean},
	}
}
