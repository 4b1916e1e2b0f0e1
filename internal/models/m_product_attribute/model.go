package m_product_attribute

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the product_attributes table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for storing the attribute values of a product.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{ProductID, TemplateID, AttributeValues},
		[]interface{}{data.ProductID, data.TemplateID, data.AttributeValues},
	)
}

// Values wraps a value map for the JSON column.
func Values(values map[string]any) spanner.NullJSON {
	return spanner.NullJSON{Value: values, Valid: true}
}
