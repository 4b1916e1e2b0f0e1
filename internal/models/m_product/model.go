package m_product

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the products table
// and its interleaved children.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a product.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{ProductID, Title, Status, CreatedAt},
		[]interface{}{data.ProductID, data.Title, data.Status, createdAt(data.CreatedAt)},
	)
}

// CategoryMut links the product to a category.
func (m *Model) CategoryMut(data *CategoryData) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		CategoriesTable,
		[]string{ProductID, CategoryID},
		[]interface{}{data.ProductID, data.CategoryID},
	)
}

// TagMut adds a tag to the product.
func (m *Model) TagMut(data *TagData) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TagsTable,
		[]string{ProductID, TagValue},
		[]interface{}{data.ProductID, data.TagValue},
	)
}

// ImageMut adds an image to the product.
func (m *Model) ImageMut(data *ImageData) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		ImagesTable,
		[]string{ProductID, Position, URL},
		[]interface{}{data.ProductID, data.Position, data.URL},
	)
}

// UpdateMut creates a Spanner mutation for updating specific product fields.
func (m *Model) UpdateMut(productID string, updates map[string]interface{}) *spanner.Mutation {
	if len(updates) == 0 {
		return nil
	}

	columns := make([]string, 0, len(updates)+1)
	values := make([]interface{}, 0, len(updates)+1)

	columns = append(columns, ProductID)
	values = append(values, productID)

	for col, val := range updates {
		columns = append(columns, col)
		values = append(values, val)
	}

	return spanner.Update(TableName, columns, values)
}

// DeleteMut deletes a product; interleaved rows cascade.
func (m *Model) DeleteMut(productID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID})
}

// createdAt keeps an explicit creation time and falls back to the commit timestamp.
func createdAt(t time.Time) interface{} {
	if t.IsZero() {
		return spanner.CommitTimestamp
	}
	return t
}
