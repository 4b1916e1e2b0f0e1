package m_product

// Field name constants for the products table.
const (
	TableName = "products"

	ProductID = "product_id"
	Title     = "title"
	Status    = "status"
	CreatedAt = "created_at"
)

// Interleaved projections of a product.
const (
	CategoriesTable = "product_categories"
	CategoryID      = "category_id"

	TagsTable = "product_tags"
	TagValue  = "tag_value"

	ImagesTable = "product_images"
	Position    = "position"
	URL         = "url"
)
