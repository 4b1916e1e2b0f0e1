package m_category

// Field name constants for the categories table.
const (
	TableName = "categories"

	CategoryID       = "category_id"
	ParentCategoryID = "parent_category_id"
	Name             = "name"
	CreatedAt        = "created_at"
)
