package m_attribute_template

// Field name constants for the attribute_templates table.
const (
	TableName = "attribute_templates"

	TemplateID   = "template_id"
	Name         = "name"
	Attributes   = "attributes"
	OptionGroups = "option_groups"
)
