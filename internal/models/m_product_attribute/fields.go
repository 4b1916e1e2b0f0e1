package m_product_attribute

// Field name constants for the product_attributes table.
const (
	TableName = "product_attributes"

	ProductID       = "product_id"
	TemplateID      = "template_id"
	AttributeValues = "attribute_values"
)
