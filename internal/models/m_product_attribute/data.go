package m_product_attribute

import (
	"cloud.google.com/go/spanner"
)

// Data represents the database model for the product_attributes table.
type Data struct {
	ProductID       string
	TemplateID      string
	AttributeValues spanner.NullJSON // JSON column
}
