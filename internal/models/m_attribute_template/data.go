package m_attribute_template

import (
	"cloud.google.com/go/spanner"
)

// Data represents the database model for the attribute_templates table.
// Attributes and OptionGroups hold JSON arrays of definitions and option groups.
type Data struct {
	TemplateID   string
	Name         string
	Attributes   spanner.NullJSON
	OptionGroups spanner.NullJSON
}
