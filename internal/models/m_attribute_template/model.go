package m_attribute_template

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the attribute_templates table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for storing a template.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{TemplateID, Name, Attributes, OptionGroups},
		[]interface{}{data.TemplateID, data.Name, data.Attributes, data.OptionGroups},
	)
}
